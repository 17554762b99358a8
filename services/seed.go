package services

import (
	"time"

	"livescore-service/models"
)

// SeedMatches 返回内置的演示比赛数据。开球时间以 now 为基准,
// 保证 live 状态的比赛确实处于比赛窗口内。
func SeedMatches(now time.Time) []models.Match {
	now = now.UTC()

	return []models.Match{
		{
			ID:       1,
			League:   "Premier League",
			HomeTeam: "Arsenal",
			AwayTeam: "Chelsea",
			HomeRoster: []string{
				"Bukayo Saka", "Declan Rice", "Gabriel Martinelli",
				"Martin Ødegaard", "Kai Havertz", "William Saliba",
			},
			AwayRoster: []string{
				"Raheem Sterling", "Moisés Caicedo", "Cole Palmer",
				"Nicolas Jackson", "Enzo Fernández", "Reece James",
			},
			HomeScore:   2,
			AwayScore:   1,
			KickoffTime: now.Add(-80 * time.Minute),
			Status:      models.StatusLive,
			Events: []models.MatchEvent{
				models.NewEvent(23, "Arsenal", "Bukayo Saka", models.EventGoal),
				models.NewEvent(45, "Chelsea", "Raheem Sterling", models.EventGoal),
				models.NewEvent(53, "Arsenal", "Declan Rice", models.EventYellowCard),
				models.NewEvent(70, "Arsenal", "Gabriel Martinelli", models.EventGoal),
				models.NewSubstitution(75, "Chelsea", "Moisés Caicedo", "Enzo Fernández"),
			},
		},
		{
			ID:       2,
			League:   "Premier League",
			HomeTeam: "Manchester City",
			AwayTeam: "Liverpool",
			HomeRoster: []string{
				"Erling Haaland", "Phil Foden", "Kevin De Bruyne",
				"Bernardo Silva", "Rodri", "Rúben Dias",
			},
			AwayRoster: []string{
				"Darwin Núñez", "Mohamed Salah", "Luis Díaz",
				"Dominik Szoboszlai", "Virgil van Dijk", "Alexis Mac Allister",
			},
			HomeScore:   3,
			AwayScore:   2,
			KickoffTime: now.Add(-30 * time.Hour),
			Status:      models.StatusFinished,
			Events: []models.MatchEvent{
				models.NewEvent(11, "Manchester City", "Erling Haaland", models.EventGoal),
				models.NewEvent(27, "Liverpool", "Darwin Núñez", models.EventGoal),
				models.NewEvent(42, "Manchester City", "Phil Foden", models.EventGoal),
				models.NewEvent(56, "Liverpool", "Mohamed Salah", models.EventGoal),
				models.NewEvent(89, "Manchester City", "Kevin De Bruyne", models.EventGoal),
			},
		},
		{
			ID:       3,
			League:   "La Liga",
			HomeTeam: "Barcelona",
			AwayTeam: "Real Madrid",
			HomeRoster: []string{
				"Robert Lewandowski", "Lamine Yamal", "Pedri",
				"Gavi", "Frenkie de Jong", "Ronald Araújo",
			},
			AwayRoster: []string{
				"Vinícius Júnior", "Jude Bellingham", "Rodrygo",
				"Federico Valverde", "Toni Kroos", "Antonio Rüdiger",
			},
			HomeScore:   0,
			AwayScore:   0,
			KickoffTime: now.Add(2 * time.Hour),
			Status:      models.StatusScheduled,
			Events:      []models.MatchEvent{},
		},
		{
			ID:       4,
			League:   "La Liga",
			HomeTeam: "Real Sociedad",
			AwayTeam: "Atlético Madrid",
			HomeRoster: []string{
				"Takefusa Kubo", "Mikel Merino", "Mikel Oyarzabal",
				"Brais Méndez", "Martín Zubimendi",
			},
			AwayRoster: []string{
				"Álvaro Morata", "Antoine Griezmann", "Marcos Llorente",
				"Koke", "Jan Oblak",
			},
			HomeScore:   1,
			AwayScore:   1,
			KickoffTime: now.Add(-26 * time.Hour),
			Status:      models.StatusFinished,
			Events: []models.MatchEvent{
				models.NewEvent(5, "Atlético Madrid", "Álvaro Morata", models.EventGoal),
				models.NewEvent(61, "Real Sociedad", "Takefusa Kubo", models.EventGoal),
				models.NewEvent(75, "Real Sociedad", "Mikel Merino", models.EventYellowCard),
			},
		},
		{
			ID:       5,
			League:   "Serie A",
			HomeTeam: "Inter",
			AwayTeam: "AC Milan",
			HomeRoster: []string{
				"Lautaro Martínez", "Marcus Thuram", "Nicolò Barella",
				"Hakan Çalhanoğlu", "Alessandro Bastoni",
			},
			AwayRoster: []string{
				"Rafael Leão", "Christian Pulisic", "Olivier Giroud",
				"Theo Hernández", "Tijjani Reijnders",
			},
			HomeScore:   0,
			AwayScore:   1,
			KickoffTime: now.Add(-35 * time.Minute),
			Status:      models.StatusLive,
			Events: []models.MatchEvent{
				models.NewEvent(14, "Inter", "Lautaro Martínez", models.EventYellowCard),
				models.NewEvent(33, "AC Milan", "Rafael Leão", models.EventGoal),
			},
		},
		{
			ID:       6,
			League:   "Serie A",
			HomeTeam: "Juventus",
			AwayTeam: "Roma",
			HomeRoster: []string{
				"Dušan Vlahović", "Federico Chiesa", "Adrien Rabiot",
				"Manuel Locatelli", "Gleison Bremer",
			},
			AwayRoster: []string{
				"Paulo Dybala", "Romelu Lukaku", "Lorenzo Pellegrini",
				"Bryan Cristante", "Gianluca Mancini",
			},
			HomeScore:   0,
			AwayScore:   0,
			KickoffTime: now.Add(48 * time.Hour),
			Status:      models.StatusScheduled,
			Events:      []models.MatchEvent{},
		},
		{
			ID:       7,
			League:   "Bundesliga",
			HomeTeam: "Bayern Munich",
			AwayTeam: "Borussia Dortmund",
			HomeRoster: []string{
				"Harry Kane", "Jamal Musiala", "Kingsley Coman",
				"Thomas Müller", "Leroy Sané", "Joshua Kimmich",
			},
			AwayRoster: []string{
				"Marco Reus", "Niclas Füllkrug", "Julian Brandt",
				"Karim Adeyemi", "Mats Hummels",
			},
			HomeScore:   4,
			AwayScore:   2,
			KickoffTime: now.Add(-72 * time.Hour),
			Status:      models.StatusFinished,
			Events: []models.MatchEvent{
				models.NewEvent(7, "Bayern Munich", "Harry Kane", models.EventGoal),
				models.NewEvent(22, "Borussia Dortmund", "Marco Reus", models.EventGoal),
				models.NewEvent(35, "Bayern Munich", "Jamal Musiala", models.EventGoal),
				models.NewEvent(50, "Bayern Munich", "Kingsley Coman", models.EventGoal),
				models.NewEvent(78, "Borussia Dortmund", "Niclas Füllkrug", models.EventGoal),
				models.NewEvent(90, "Bayern Munich", "Thomas Müller", models.EventGoal),
			},
		},
		{
			ID:       8,
			League:   "Bundesliga",
			HomeTeam: "Bayer Leverkusen",
			AwayTeam: "RB Leipzig",
			HomeRoster: []string{
				"Florian Wirtz", "Victor Boniface", "Jeremie Frimpong",
				"Granit Xhaka", "Jonathan Tah",
			},
			AwayRoster: []string{
				"Loïs Openda", "Xavi Simons", "Dani Olmo",
				"Benjamin Šeško", "Willi Orbán",
			},
			HomeScore:   1,
			AwayScore:   1,
			KickoffTime: now.Add(-50 * time.Minute),
			Status:      models.StatusLive,
			Events: []models.MatchEvent{
				models.NewEvent(17, "RB Leipzig", "Loïs Openda", models.EventGoal),
				models.NewEvent(44, "Bayer Leverkusen", "Florian Wirtz", models.EventGoal),
			},
		},
		{
			ID:       9,
			League:   "Ligue 1",
			HomeTeam: "Paris Saint-Germain",
			AwayTeam: "Marseille",
			HomeRoster: []string{
				"Kylian Mbappé", "Ousmane Dembélé", "Vitinha",
				"Achraf Hakimi", "Marquinhos",
			},
			AwayRoster: []string{
				"Jonathan Clauss", "Pierre-Emerick Aubameyang", "Jordan Veretout",
				"Geoffrey Kondogbia", "Chancel Mbemba",
			},
			HomeScore:   2,
			AwayScore:   0,
			KickoffTime: now.Add(-96 * time.Hour),
			Status:      models.StatusFinished,
			Events: []models.MatchEvent{
				models.NewEvent(31, "Paris Saint-Germain", "Kylian Mbappé", models.EventGoal),
				models.NewEvent(61, "Paris Saint-Germain", "Ousmane Dembélé", models.EventGoal),
				models.NewEvent(75, "Marseille", "Jonathan Clauss", models.EventRedCard),
			},
		},
		{
			ID:       10,
			League:   "Ligue 1",
			HomeTeam: "Lyon",
			AwayTeam: "Nice",
			HomeRoster: []string{
				"Alexandre Lacazette", "Rayan Cherki", "Corentin Tolisso",
				"Maxence Caqueret", "Anthony Lopes",
			},
			AwayRoster: []string{
				"Terem Moffi", "Gaëtan Laborde", "Khéphren Thuram",
				"Dante", "Jean-Clair Todibo",
			},
			HomeScore:   0,
			AwayScore:   0,
			KickoffTime: now.Add(24 * time.Hour),
			Status:      models.StatusScheduled,
			Events:      []models.MatchEvent{},
		},
	}
}

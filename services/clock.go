package services

import "time"

// MatchDurationMinutes 比赛时长上限 (分钟)
const MatchDurationMinutes = 90

// DerivedMinute 根据开球时间和当前时间计算比赛进行到第几分钟,
// 结果限制在 [0, 90] 区间。两个时间在相减前都会规范化为 UTC,
// 避免带时区和不带时区的时间混算。纯函数,无副作用。
func DerivedMinute(kickoff, now time.Time) int {
	elapsed := now.UTC().Sub(kickoff.UTC())
	if elapsed < 0 {
		return 0
	}
	minute := int(elapsed / time.Minute)
	if minute > MatchDurationMinutes {
		return MatchDurationMinutes
	}
	return minute
}

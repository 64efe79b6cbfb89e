package services

import (
	"time"

	"github.com/HyNS00/caffine-tracker/models"
)

// NextBedtime : 다음 취침 시각 계산
// 오늘 날짜에 취침 시각을 합성하고, 이미 지났으면(같은 시각 포함) 다음 날로 넘긴다.
// 취침 시각은 항상 now로부터 24시간 이내다.
func NextBedtime(now time.Time, bedHour, bedMinute int) time.Time {
	bedtime := time.Date(now.Year(), now.Month(), now.Day(), bedHour, bedMinute, 0, 0, now.Location())
	if !bedtime.After(now) {
		bedtime = bedtime.AddDate(0, 0, 1)
	}
	return bedtime
}

// HoursUntilBedtime : 취침 시각까지 남은 시간
func HoursUntilBedtime(now time.Time, settings models.CaffeineSettings) float64 {
	return hoursBetween(now, NextBedtime(now, settings.BedHour, settings.BedMinute))
}

// PredictedAtBedtime : 취침 시각의 예상 체내 카페인량
// 기존 기록은 취침 시각 기준으로 직접 평가하고(반올림 오차 누적 방지),
// 지금 마신다고 가정한 추가 섭취분은 남은 시간만큼 감쇠시켜 더한다.
func PredictedAtBedtime(intakes []models.CaffeineIntake, now time.Time, settings models.CaffeineSettings, additionalMg float64) float64 {
	bedtime := NextBedtime(now, settings.BedHour, settings.BedMinute)
	hoursUntilBed := hoursBetween(now, bedtime)

	currentAtBedtime := CaffeineLevelAt(intakes, bedtime, settings.HalfLifeHours)
	additionalAtBedtime := CalculateRemaining(additionalMg, hoursUntilBed, settings.HalfLifeHours)

	return currentAtBedtime + additionalAtBedtime
}

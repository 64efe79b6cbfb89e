package services

import (
	"math"
	"time"

	"github.com/HyNS00/caffine-tracker/models"
)

// Round1 : 소수점 첫째 자리 반올림 (표시용)
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// todayTotal : 오늘 섭취한 카페인 총량 (감쇠 없이 단순 합)
func todayTotal(todayIntakes []models.CaffeineIntake) float64 {
	total := 0.0
	for _, intake := range todayIntakes {
		total += intake.CaffeineMg
	}
	return total
}

// BuildCaffeineStatus : 상태 스냅샷 조립
// additionalMg > 0 이면 "지금 이 음료를 마신다면"의 가상 상태가 된다.
func BuildCaffeineStatus(intakes, todayIntakes []models.CaffeineIntake, now time.Time, settings models.CaffeineSettings, additionalMg float64) models.CaffeineStatus {
	currentMg := CaffeineLevelAt(intakes, now, settings.HalfLifeHours) + additionalMg
	predictedAtBedtimeMg := PredictedAtBedtime(intakes, now, settings, additionalMg)
	totalMg := todayTotal(todayIntakes) + additionalMg
	hoursUntilBedtime := HoursUntilBedtime(now, settings)

	return models.CaffeineStatus{
		CurrentMg:            Round1(currentMg),
		PredictedAtBedtimeMg: Round1(predictedAtBedtimeMg),
		TodayTotalMg:         Round1(totalMg),
		HoursUntilBedtime:    Round1(hoursUntilBedtime),
	}
}

// DetermineRecommendation : 3단계 판정
// 판정 순서 중요: 일일 한도 초과(DANGER) 먼저, 그다음 취침 기준(WARNING).
// 비교는 모두 초과(>) 기준 — 한도에 딱 맞으면 아직 안전이다.
func DetermineRecommendation(todayTotalMg, dailyLimitMg, predictedAtBedtimeMg, targetSleepMg float64) models.DrinkRecommendation {
	if todayTotalMg > dailyLimitMg {
		return models.RecommendationDanger
	}
	if predictedAtBedtimeMg > targetSleepMg {
		return models.RecommendationWarning
	}
	return models.RecommendationSafe
}

// CurrentStatus : 현재 상태 + 판정
// 판정은 반올림 전의 원본 값으로 수행한다.
func CurrentStatus(intakes, todayIntakes []models.CaffeineIntake, now time.Time, settings models.CaffeineSettings) (models.CaffeineStatus, models.DrinkRecommendation) {
	status := BuildCaffeineStatus(intakes, todayIntakes, now, settings, 0)

	recommendation := DetermineRecommendation(
		todayTotal(todayIntakes),
		settings.DailyLimitMg,
		PredictedAtBedtime(intakes, now, settings, 0),
		settings.TargetSleepMg,
	)

	return status, recommendation
}

// DrinkCheckResult : 음료 체크 계산 결과
type DrinkCheckResult struct {
	Before         models.CaffeineStatus
	After          models.CaffeineStatus
	Recommendation models.DrinkRecommendation
	IsSafe         bool
}

// CheckDrink : "이 음료 마셔도 될까?" 전/후 비교
// 판정은 마신 후(after) 상태 기준이며, WARNING은 안전이 아니다.
func CheckDrink(intakes, todayIntakes []models.CaffeineIntake, now time.Time, settings models.CaffeineSettings, candidateMg float64) DrinkCheckResult {
	before := BuildCaffeineStatus(intakes, todayIntakes, now, settings, 0)
	after := BuildCaffeineStatus(intakes, todayIntakes, now, settings, candidateMg)

	recommendation := DetermineRecommendation(
		todayTotal(todayIntakes)+candidateMg,
		settings.DailyLimitMg,
		PredictedAtBedtime(intakes, now, settings, candidateMg),
		settings.TargetSleepMg,
	)

	return DrinkCheckResult{
		Before:         before,
		After:          after,
		Recommendation: recommendation,
		IsSafe:         recommendation == models.RecommendationSafe,
	}
}

package services

import (
	"math"
	"time"

	"github.com/HyNS00/caffine-tracker/models"
)

// hoursBetween : 두 시각 사이의 경과 시간 (분 단위 정밀도 / 60)
func hoursBetween(from, to time.Time) float64 {
	return math.Trunc(to.Sub(from).Minutes()) / 60.0
}

// CalculateRemaining : 단일 섭취분의 잔여 카페인량 계산
// 반감기 공식: 남은 양 = 초기 양 * (1/2)^(경과시간/반감기)
// 경과 시간이 0 이하면 아직 분해 전이므로 전량 잔존으로 처리.
// 미래 시점의 기록(가상 섭취 포함)도 이 분기를 타며, 체크 API의
// "마신 후" 계산이 이 동작에 의존하므로 바꾸면 안 된다.
func CalculateRemaining(initialMg, hoursElapsed, halfLifeHours float64) float64 {
	if hoursElapsed <= 0 {
		return initialMg
	}
	return initialMg * math.Pow(0.5, hoursElapsed/halfLifeHours)
}

// CaffeineLevelAt : 특정 시점의 체내 총 카페인량 계산
// 호출자가 조회 윈도우(최근 24시간)로 미리 걸러낸 기록을 넘긴다.
// 반감기 5시간 기준 24시간이면 잔존율 약 3.6%라 그 이전 기록은 무시해도 된다.
func CaffeineLevelAt(intakes []models.CaffeineIntake, targetTime time.Time, halfLifeHours float64) float64 {
	total := 0.0
	for _, intake := range intakes {
		elapsed := hoursBetween(intake.ConsumedAt, targetTime)
		total += CalculateRemaining(intake.CaffeineMg, elapsed, halfLifeHours)
	}
	return total
}

package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/HyNS00/caffine-tracker/models"
)

func TestDetermineRecommendation(t *testing.T) {
	tests := []struct {
		name        string
		todayTotal  float64
		dailyLimit  float64
		predicted   float64
		targetSleep float64
		expected    models.DrinkRecommendation
	}{
		{"한도 초과면 무조건 DANGER", 401, 400, 0, 50, models.RecommendationDanger},
		{"한도 초과면 취침 예측과 무관하게 DANGER", 401, 400, 999, 50, models.RecommendationDanger},
		{"한도 이내 + 취침 예측 초과면 WARNING", 399, 400, 51, 50, models.RecommendationWarning},
		{"둘 다 이내면 SAFE", 200, 400, 30, 50, models.RecommendationSafe},
		{"한도에 딱 맞으면 아직 SAFE", 400, 400, 30, 50, models.RecommendationSafe},
		{"취침 목표에 딱 맞으면 아직 SAFE", 200, 400, 50, 50, models.RecommendationSafe},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetermineRecommendation(tt.todayTotal, tt.dailyLimit, tt.predicted, tt.targetSleep)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 50.0, Round1(50.04))
	assert.Equal(t, 50.1, Round1(50.05))
	assert.Equal(t, 0.0, Round1(0))
	assert.Equal(t, 123.5, Round1(123.449999+0.05))
}

func TestBuildCaffeineStatus(t *testing.T) {
	settings := settings23h()
	now := time.Date(2025, 3, 10, 18, 0, 0, 0, time.Local)

	intakes := []models.CaffeineIntake{
		intakeAt(now.Add(-5*time.Hour), 100), // 13:00, 현재 50mg
	}
	todayIntakes := intakes

	t.Run("추가분 없는 현재 상태", func(t *testing.T) {
		status := BuildCaffeineStatus(intakes, todayIntakes, now, settings, 0)

		assert.InDelta(t, 50.0, status.CurrentMg, 0.1)
		assert.InDelta(t, 25.0, status.PredictedAtBedtimeMg, 0.1) // 23:00까지 10시간 경과
		assert.InDelta(t, 100.0, status.TodayTotalMg, 0.1)
		assert.InDelta(t, 5.0, status.HoursUntilBedtime, 0.1)
	})

	t.Run("가상 섭취분이 현재/오늘/취침 예측 모두에 반영", func(t *testing.T) {
		status := BuildCaffeineStatus(intakes, todayIntakes, now, settings, 100)

		assert.InDelta(t, 150.0, status.CurrentMg, 0.1)
		assert.InDelta(t, 75.0, status.PredictedAtBedtimeMg, 0.1) // 25 + 100*0.5
		assert.InDelta(t, 200.0, status.TodayTotalMg, 0.1)
	})

	t.Run("빈 기록이면 전부 0", func(t *testing.T) {
		status := BuildCaffeineStatus(nil, nil, now, settings, 0)

		assert.Equal(t, 0.0, status.CurrentMg)
		assert.Equal(t, 0.0, status.PredictedAtBedtimeMg)
		assert.Equal(t, 0.0, status.TodayTotalMg)
	})
}

func TestCurrentStatus(t *testing.T) {
	settings := settings23h()
	now := time.Date(2025, 3, 10, 18, 0, 0, 0, time.Local)

	intakes := []models.CaffeineIntake{intakeAt(now.Add(-1*time.Hour), 150)}

	status, recommendation := CurrentStatus(intakes, intakes, now, settings)

	// 취침까지 6시간 → 150 * 0.5^(6/5) ≈ 65.3mg > 50mg 목표 → WARNING
	assert.Equal(t, models.RecommendationWarning, recommendation)
	assert.InDelta(t, 5.0, status.HoursUntilBedtime, 0.01)
}

func TestCheckDrink(t *testing.T) {
	settings := settings23h()
	now := time.Date(2025, 3, 10, 18, 0, 0, 0, time.Local)

	t.Run("판정은 마신 후 상태 기준", func(t *testing.T) {
		// 마시기 전엔 깨끗한 상태, 150mg을 마시면 취침 예측이 목표를 넘는다
		result := CheckDrink(nil, nil, now, settings, 150)

		assert.Equal(t, 0.0, result.Before.CurrentMg)
		assert.InDelta(t, 150.0, result.After.CurrentMg, 0.1)
		assert.InDelta(t, 75.0, result.After.PredictedAtBedtimeMg, 0.1)
		assert.Equal(t, models.RecommendationWarning, result.Recommendation)
	})

	t.Run("WARNING은 안전이 아니다", func(t *testing.T) {
		result := CheckDrink(nil, nil, now, settings, 150)
		assert.False(t, result.IsSafe)
	})

	t.Run("소량이면 SAFE", func(t *testing.T) {
		// 30mg → 취침 예측 15mg, 오늘 총량 30mg
		result := CheckDrink(nil, nil, now, settings, 30)

		assert.Equal(t, models.RecommendationSafe, result.Recommendation)
		assert.True(t, result.IsSafe)
	})

	t.Run("일일 한도 초과는 DANGER", func(t *testing.T) {
		today := []models.CaffeineIntake{intakeAt(now.Add(-10*time.Hour), 350)}
		result := CheckDrink(nil, today, now, settings, 100)

		// 350 + 100 = 450 > 400
		assert.Equal(t, models.RecommendationDanger, result.Recommendation)
		assert.False(t, result.IsSafe)
		assert.InDelta(t, 450.0, result.After.TodayTotalMg, 0.1)
	})
}

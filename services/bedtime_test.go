package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/HyNS00/caffine-tracker/models"
)

func settings23h() models.CaffeineSettings {
	return models.CaffeineSettings{
		HalfLifeHours: 5,
		DailyLimitMg:  400,
		TargetSleepMg: 50,
		BedHour:       23,
		BedMinute:     0,
	}
}

func TestNextBedtime(t *testing.T) {
	t.Run("취침 전이면 오늘 취침 시각", func(t *testing.T) {
		now := time.Date(2025, 3, 10, 22, 0, 0, 0, time.Local)
		bedtime := NextBedtime(now, 23, 0)

		assert.Equal(t, time.Date(2025, 3, 10, 23, 0, 0, 0, time.Local), bedtime)
		assert.InDelta(t, 1.0, hoursBetween(now, bedtime), 0.0001)
	})

	t.Run("취침 시각이 지났으면 다음 날", func(t *testing.T) {
		now := time.Date(2025, 3, 10, 23, 30, 0, 0, time.Local)
		bedtime := NextBedtime(now, 23, 0)

		assert.Equal(t, time.Date(2025, 3, 11, 23, 0, 0, 0, time.Local), bedtime)
		assert.InDelta(t, 23.5, hoursBetween(now, bedtime), 0.0001)
	})

	t.Run("정확히 취침 시각이면 다음 날로 넘어간다", func(t *testing.T) {
		now := time.Date(2025, 3, 10, 23, 0, 0, 0, time.Local)
		bedtime := NextBedtime(now, 23, 0)

		assert.Equal(t, time.Date(2025, 3, 11, 23, 0, 0, 0, time.Local), bedtime)
	})

	t.Run("하루를 넘겨 굴리지 않는다", func(t *testing.T) {
		now := time.Date(2025, 3, 10, 0, 1, 0, 0, time.Local)
		bedtime := NextBedtime(now, 0, 0)

		// 자정 취침이면 다음 날 자정, 24시간 이내
		assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, time.Local), bedtime)
		assert.LessOrEqual(t, bedtime.Sub(now), 24*time.Hour)
	})
}

func TestHoursUntilBedtime(t *testing.T) {
	now := time.Date(2025, 3, 10, 20, 30, 0, 0, time.Local)
	got := HoursUntilBedtime(now, settings23h())
	assert.InDelta(t, 2.5, got, 0.0001)
}

func TestPredictedAtBedtime(t *testing.T) {
	settings := settings23h()

	t.Run("기록 없고 추가분도 없으면 0", func(t *testing.T) {
		now := time.Date(2025, 3, 10, 18, 0, 0, 0, time.Local)
		assert.Equal(t, 0.0, PredictedAtBedtime(nil, now, settings, 0))
	})

	t.Run("기존 기록은 취침 시각 기준으로 직접 감쇠", func(t *testing.T) {
		// 18:00에 100mg 섭취, 23:00 취침 → 5시간 경과 = 반감기 1회 → 50mg
		now := time.Date(2025, 3, 10, 18, 0, 0, 0, time.Local)
		intakes := []models.CaffeineIntake{intakeAt(now, 100)}

		assert.InDelta(t, 50.0, PredictedAtBedtime(intakes, now, settings, 0), 0.01)
	})

	t.Run("추가 섭취분은 남은 시간만큼 감쇠해서 더한다", func(t *testing.T) {
		// 18:00 현재 기록 없음, 지금 100mg을 마시면 취침까지 5시간 → 50mg
		now := time.Date(2025, 3, 10, 18, 0, 0, 0, time.Local)

		assert.InDelta(t, 50.0, PredictedAtBedtime(nil, now, settings, 100), 0.01)
	})

	t.Run("기존 기록 + 추가분 합산", func(t *testing.T) {
		now := time.Date(2025, 3, 10, 18, 0, 0, 0, time.Local)
		intakes := []models.CaffeineIntake{intakeAt(now.Add(-5 * time.Hour), 100)}

		// 13:00의 100mg은 취침(23:00)까지 10시간 → 25mg, 추가 100mg은 5시간 → 50mg
		assert.InDelta(t, 75.0, PredictedAtBedtime(intakes, now, settings, 100), 0.01)
	})
}

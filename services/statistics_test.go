package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HyNS00/caffine-tracker/models"
)

func TestBuildTimeline(t *testing.T) {
	settings := settings23h()
	now := time.Date(2025, 3, 10, 14, 0, 0, 0, time.Local)

	t.Run("빈 기록이면 모든 포인트가 0", func(t *testing.T) {
		points := BuildTimeline(nil, now, settings, 3)

		require.Len(t, points, 4) // 양 끝 포함 hours+1개
		for i, p := range points {
			assert.Equal(t, now.Add(time.Duration(i)*time.Hour), p.Time)
			assert.Equal(t, 0.0, p.CaffeineMg)
		}
	})

	t.Run("시간이 지날수록 감소", func(t *testing.T) {
		intakes := []models.CaffeineIntake{intakeAt(now, 100)}
		points := BuildTimeline(intakes, now, settings, 10)

		require.Len(t, points, 11)
		assert.InDelta(t, 100.0, points[0].CaffeineMg, 0.1)
		assert.InDelta(t, 50.0, points[5].CaffeineMg, 0.1)  // 반감기 1회
		assert.InDelta(t, 25.0, points[10].CaffeineMg, 0.1) // 반감기 2회

		for i := 1; i < len(points); i++ {
			assert.LessOrEqual(t, points[i].CaffeineMg, points[i-1].CaffeineMg)
		}
	})

	t.Run("hours가 0이면 현재 포인트 하나", func(t *testing.T) {
		points := BuildTimeline(nil, now, settings, 0)
		require.Len(t, points, 1)
		assert.Equal(t, now, points[0].Time)
	})
}

func TestBuildDailyStats(t *testing.T) {
	// 7일 윈도우: 3/4 ~ 3/10 (오늘 포함 양 끝 포함)
	today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	startDate := today.AddDate(0, 0, -6)

	t.Run("기록 하나가 해당 날짜에만 잡힌다", func(t *testing.T) {
		intakes := []models.CaffeineIntake{
			intakeAt(time.Date(2025, 3, 7, 9, 30, 0, 0, time.Local), 150),
		}

		stats, average := BuildDailyStats(intakes, startDate, 7)

		require.Len(t, stats, 7)
		for _, s := range stats {
			if s.Date == "2025-03-07" {
				assert.Equal(t, 150.0, s.TotalCaffeineMg)
				assert.Equal(t, 1, s.IntakeCount)
			} else {
				assert.Equal(t, 0.0, s.TotalCaffeineMg)
				assert.Equal(t, 0, s.IntakeCount)
			}
		}
		assert.InDelta(t, 150.0/7.0, average, 0.05) // 반올림 전후 오차 허용
	})

	t.Run("같은 날 여러 기록은 합산", func(t *testing.T) {
		day := time.Date(2025, 3, 5, 0, 0, 0, 0, time.Local)
		intakes := []models.CaffeineIntake{
			intakeAt(day.Add(8*time.Hour), 100),
			intakeAt(day.Add(14*time.Hour), 75),
			intakeAt(day.Add(23*time.Hour+59*time.Minute), 25), // 당일 막판도 포함
		}

		stats, _ := BuildDailyStats(intakes, startDate, 7)

		assert.Equal(t, "2025-03-05", stats[1].Date)
		assert.Equal(t, 200.0, stats[1].TotalCaffeineMg)
		assert.Equal(t, 3, stats[1].IntakeCount)
	})

	t.Run("날짜 순서가 시작일부터 차례대로", func(t *testing.T) {
		stats, _ := BuildDailyStats(nil, startDate, 7)

		assert.Equal(t, "2025-03-04", stats[0].Date)
		assert.Equal(t, "2025-03-10", stats[6].Date)
	})

	t.Run("days가 0이면 빈 결과와 평균 0", func(t *testing.T) {
		stats, average := BuildDailyStats(nil, startDate, 0)

		assert.Empty(t, stats)
		assert.Equal(t, 0.0, average)
	})
}

func TestTopBeverages(t *testing.T) {
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)

	drink := func(name, brand string, volume int) models.CaffeineIntake {
		return models.CaffeineIntake{
			BeverageName: name,
			BrandName:    brand,
			VolumeMl:     volume,
			CaffeineMg:   100,
			ConsumedAt:   base,
		}
	}

	intakes := []models.CaffeineIntake{
		drink("아메리카노", "스타벅스", 355),
		drink("아메리카노", "스타벅스", 355),
		drink("아메리카노", "스타벅스", 355),
		drink("레드불", "레드불", 250),
		drink("레드불", "레드불", 250),
		drink("녹차", "오설록", 200),
		// 같은 이름이라도 용량이 다르면 다른 항목
		drink("아메리카노", "스타벅스", 473),
	}

	t.Run("섭취 횟수 내림차순", func(t *testing.T) {
		stats := TopBeverages(intakes, 5)

		require.Len(t, stats, 4)
		assert.Equal(t, "아메리카노", stats[0].BeverageName)
		assert.Equal(t, 355, stats[0].VolumeMl)
		assert.Equal(t, int64(3), stats[0].Count)
		assert.Equal(t, int64(2), stats[1].Count)
	})

	t.Run("limit 적용", func(t *testing.T) {
		stats := TopBeverages(intakes, 2)
		require.Len(t, stats, 2)
	})

	t.Run("빈 기록", func(t *testing.T) {
		assert.Empty(t, TopBeverages(nil, 5))
	})
}

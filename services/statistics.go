package services

import (
	"sort"
	"time"

	"github.com/HyNS00/caffine-tracker/models"
)

// BuildTimeline : 시간별 예상 카페인량 (now부터 1시간 간격, 양 끝 포함 hours+1개)
func BuildTimeline(intakes []models.CaffeineIntake, now time.Time, settings models.CaffeineSettings, hours int) []models.TimelineDataPoint {
	dataPoints := make([]models.TimelineDataPoint, 0, hours+1)

	for i := 0; i <= hours; i++ {
		targetTime := now.Add(time.Duration(i) * time.Hour)
		caffeineMg := CaffeineLevelAt(intakes, targetTime, settings.HalfLifeHours)
		dataPoints = append(dataPoints, models.TimelineDataPoint{
			Time:       targetTime,
			CaffeineMg: Round1(caffeineMg),
		})
	}

	return dataPoints
}

// sameDay : 같은 달력 날짜인지 (기준 시계의 로케이션 기준)
func sameDay(t, day time.Time) bool {
	return t.Year() == day.Year() && t.YearDay() == day.YearDay()
}

// BuildDailyStats : startDate부터 days일간의 일별 합계/횟수 + 기간 평균
// 호출자는 startDate를 endDate - (days - 1)로 계산한다 (양 끝 포함 days일).
func BuildDailyStats(intakes []models.CaffeineIntake, startDate time.Time, days int) ([]models.DailyStat, float64) {
	dailyStats := make([]models.DailyStat, 0, days)
	periodTotal := 0.0

	for i := 0; i < days; i++ {
		date := startDate.AddDate(0, 0, i)

		dailyTotal := 0.0
		count := 0
		for _, intake := range intakes {
			if sameDay(intake.ConsumedAt, date) {
				dailyTotal += intake.CaffeineMg
				count++
			}
		}

		periodTotal += dailyTotal
		dailyStats = append(dailyStats, models.DailyStat{
			Date:            date.Format("2006-01-02"),
			TotalCaffeineMg: Round1(dailyTotal),
			IntakeCount:     count,
		})
	}

	// 0으로 나누기 방지
	if days == 0 {
		return dailyStats, 0
	}
	return dailyStats, Round1(periodTotal / float64(days))
}

// TopBeverages : 자주 마신 음료 순위
// (이름, 브랜드, 용량) 조합으로 묶어 섭취 횟수 내림차순 정렬, limit개 반환.
// 횟수가 같으면 이름순으로 정렬해 결과를 결정적으로 만든다.
func TopBeverages(intakes []models.CaffeineIntake, limit int) []models.TopBeverageStat {
	type beverageKey struct {
		name     string
		brand    string
		volumeMl int
	}

	counts := make(map[beverageKey]int64)
	for _, intake := range intakes {
		key := beverageKey{intake.BeverageName, intake.BrandName, intake.VolumeMl}
		counts[key]++
	}

	stats := make([]models.TopBeverageStat, 0, len(counts))
	for key, count := range counts {
		stats = append(stats, models.TopBeverageStat{
			BeverageName: key.name,
			BrandName:    key.brand,
			VolumeMl:     key.volumeMl,
			Count:        count,
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].BeverageName < stats[j].BeverageName
	})

	if limit > 0 && len(stats) > limit {
		stats = stats[:limit]
	}
	return stats
}

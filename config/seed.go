package config

import (
	"log"

	"github.com/HyNS00/caffine-tracker/models"
)

// SeedPresetBeverages : 프리셋 음료 마스터 데이터 시딩 (테이블이 비어있을 때만)
func SeedPresetBeverages() {
	var count int64
	DB.Model(&models.PresetBeverage{}).Count(&count)
	if count > 0 {
		return
	}

	presets := []models.PresetBeverage{
		// 스타벅스
		{Name: "아메리카노", BrandName: "스타벅스", Category: models.CategoryAmericano, VolumeMl: 355, CaffeineMg: 150},
		{Name: "카페 라떼", BrandName: "스타벅스", Category: models.CategoryLatte, VolumeMl: 355, CaffeineMg: 75},
		{Name: "콜드브루", BrandName: "스타벅스", Category: models.CategoryColdBrew, VolumeMl: 355, CaffeineMg: 155},
		{Name: "에스프레소", BrandName: "스타벅스", Category: models.CategoryEspresso, VolumeMl: 40, CaffeineMg: 75},

		// 이디야
		{Name: "아메리카노", BrandName: "이디야", Category: models.CategoryAmericano, VolumeMl: 420, CaffeineMg: 125},
		{Name: "카페 모카", BrandName: "이디야", Category: models.CategoryMocha, VolumeMl: 420, CaffeineMg: 90},

		// 메가커피
		{Name: "아메리카노", BrandName: "메가커피", Category: models.CategoryAmericano, VolumeMl: 591, CaffeineMg: 180},

		// 에너지 음료
		{Name: "레드불", BrandName: "레드불", Category: models.CategoryEnergyDrink, VolumeMl: 250, CaffeineMg: 80},
		{Name: "몬스터 에너지", BrandName: "몬스터", Category: models.CategoryEnergyDrink, VolumeMl: 355, CaffeineMg: 100},
		{Name: "핫식스", BrandName: "롯데", Category: models.CategoryEnergyDrink, VolumeMl: 250, CaffeineMg: 60},

		// 차류
		{Name: "얼그레이 홍차", BrandName: "트와이닝", Category: models.CategoryBlackTea, VolumeMl: 200, CaffeineMg: 30},
		{Name: "녹차", BrandName: "오설록", Category: models.CategoryGreenTea, VolumeMl: 200, CaffeineMg: 26},
		{Name: "밀크티", BrandName: "공차", Category: models.CategoryMilkTea, VolumeMl: 355, CaffeineMg: 43},
	}

	if err := DB.Create(&presets).Error; err != nil {
		log.Println("⚠️ 프리셋 음료 시딩 실패:", err)
		return
	}

	log.Printf("✅ 프리셋 음료 %d건 시딩 완료", len(presets))
}

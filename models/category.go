package models

// 음료 카테고리 코드
const (
	CategoryEspresso       = "ESPRESSO"
	CategoryAmericano      = "AMERICANO"
	CategoryLatte          = "LATTE"
	CategoryCappuccino     = "CAPPUCCINO"
	CategoryMocha          = "MOCHA"
	CategoryColdBrew       = "COLD_BREW"
	CategoryCoffeeSmoothie = "COFFEE_SMOOTHIE"
	CategoryFruitSmoothie  = "FRUIT_SMOOTHIE"
	CategoryEnergyDrink    = "ENERGY_DRINK"
	CategoryBlackTea       = "BLACK_TEA"
	CategoryGreenTea       = "GREEN_TEA"
	CategoryMilkTea        = "MILK_TEA"
	CategoryIcedTea        = "ICED_TEA"
)

// BeverageCategory : 카테고리별 100ml당 카페인 함량 테이블
type BeverageCategory struct {
	Code                 string  `json:"code"`
	DisplayName          string  `json:"display_name"`
	CaffeineMgPer100ml   float64 `json:"caffeine_mg_per_100ml"`
	DefaultServingSizeMl int     `json:"default_serving_size_ml"`
}

// BeverageCategories : 전체 카테고리 목록 (고정 테이블)
var BeverageCategories = []BeverageCategory{
	// 커피류
	{CategoryEspresso, "에스프레소", 250.0, 40},
	{CategoryAmericano, "아메리카노", 34.0, 355},
	{CategoryLatte, "라떼", 38.0, 355},
	{CategoryCappuccino, "카푸치노", 40.0, 355},
	{CategoryMocha, "모카", 37.0, 355},
	{CategoryColdBrew, "콜드브루", 24.0, 355},

	// 스무디
	{CategoryCoffeeSmoothie, "커피 스무디", 21.5, 473},
	{CategoryFruitSmoothie, "과일 스무디", 0.0, 473},

	// 에너지/차류
	{CategoryEnergyDrink, "에너지 음료", 29.0, 250},
	{CategoryBlackTea, "홍차", 15.0, 200},
	{CategoryGreenTea, "녹차", 13.0, 200},
	{CategoryMilkTea, "밀크티", 12.0, 355},

	// 기타
	{CategoryIcedTea, "아이스티", 4.0, 355},
}

// CategoryByCode : 코드로 카테고리 조회
func CategoryByCode(code string) (BeverageCategory, bool) {
	for _, c := range BeverageCategories {
		if c.Code == code {
			return c, true
		}
	}
	return BeverageCategory{}, false
}

// CaffeineForVolume : 용량에 따른 카페인량 추정 (0 이하이면 기본 용량 사용)
func (c BeverageCategory) CaffeineForVolume(volumeMl int) float64 {
	if volumeMl <= 0 {
		volumeMl = c.DefaultServingSizeMl
	}
	return c.CaffeineMgPer100ml * float64(volumeMl) / 100.0
}

// HasCaffeine : 카페인이 들어있는 카테고리인지
func (c BeverageCategory) HasCaffeine() bool {
	return c.CaffeineMgPer100ml > 0
}

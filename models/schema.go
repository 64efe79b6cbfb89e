package models

import (
	"time"

	"gorm.io/gorm"
)

// User : 사용자 정보 + 카페인 설정
type User struct {
	gorm.Model
	Email    string `json:"email" gorm:"type:varchar(255);uniqueIndex"`
	Password string `json:"-" gorm:"type:varchar(255)"` // JSON 응답에서 제외
	Name     string `json:"name" gorm:"type:varchar(50)"`

	// 카페인 분해 파라미터 (가입 시 기본값: 400mg / 5.0h / 23:00 / 50mg)
	DailyCaffeineLimit  float64 `json:"daily_caffeine_limit"`            // 일일 권장 섭취 한도 (mg)
	CaffeineHalfLife    float64 `json:"caffeine_half_life"`              // 반감기 (시간)
	BedTime             string  `json:"bed_time" gorm:"type:varchar(5)"` // 목표 취침 시각 (HH:MM)
	TargetSleepCaffeine float64 `json:"target_sleep_caffeine"`           // 취침 시 목표 잔여량 (mg)
}

// 가입 시 기본 설정값
const (
	DefaultDailyCaffeineLimit  = 400.0
	DefaultCaffeineHalfLife    = 5.0
	DefaultBedTime             = "23:00"
	DefaultTargetSleepCaffeine = 50.0
)

// CaffeineSettings : 계산 엔진에 넘기는 사용자별 파라미터
// BedTime 문자열은 경계(컨트롤러)에서 미리 파싱해서 넘긴다.
type CaffeineSettings struct {
	HalfLifeHours float64
	DailyLimitMg  float64
	TargetSleepMg float64
	BedHour       int
	BedMinute     int
}

// Settings : 사용자 설정을 엔진 파라미터로 변환
func (u *User) Settings() (CaffeineSettings, error) {
	bedTime, err := time.Parse("15:04", u.BedTime)
	if err != nil {
		return CaffeineSettings{}, err
	}

	return CaffeineSettings{
		HalfLifeHours: u.CaffeineHalfLife,
		DailyLimitMg:  u.DailyCaffeineLimit,
		TargetSleepMg: u.TargetSleepCaffeine,
		BedHour:       bedTime.Hour(),
		BedMinute:     bedTime.Minute(),
	}, nil
}

// CaffeineIntake : 섭취 기록
// 음료 정보를 스냅샷으로 복사해서 보관 (원본 음료가 수정/삭제돼도 기록 유지)
type CaffeineIntake struct {
	gorm.Model
	UserID           uint      `json:"user_id" gorm:"index"`
	BeverageName     string    `json:"beverage_name" gorm:"type:varchar(100)"`
	BrandName        string    `json:"brand_name" gorm:"type:varchar(50)"`
	Category         string    `json:"category" gorm:"type:varchar(30)"`
	VolumeMl         int       `json:"volume_ml"`
	CaffeineMg       float64   `json:"caffeine_mg"`
	ConsumedAt       time.Time `json:"consumed_at" gorm:"index"`
	SourceType       string    `json:"source_type" gorm:"type:varchar(10)"` // PRESET / CUSTOM
	SourceBeverageID *uint     `json:"source_beverage_id"`
}

// 섭취 기록 출처
const (
	BeverageTypePreset = "PRESET"
	BeverageTypeCustom = "CUSTOM"
)

// PresetBeverage : 기본 제공 음료 (마스터 데이터)
type PresetBeverage struct {
	gorm.Model
	Name       string  `json:"name" gorm:"type:varchar(100)"`
	BrandName  string  `json:"brand_name" gorm:"type:varchar(50)"`
	Category   string  `json:"category" gorm:"type:varchar(30)"`
	VolumeMl   int     `json:"volume_ml"`
	CaffeineMg float64 `json:"caffeine_mg"`
}

// CustomBeverage : 사용자가 직접 등록한 음료
type CustomBeverage struct {
	gorm.Model
	UserID     uint    `json:"user_id" gorm:"index"`
	Name       string  `json:"name" gorm:"type:varchar(100)"`
	Category   string  `json:"category" gorm:"type:varchar(30)"`
	VolumeMl   int     `json:"volume_ml"`
	CaffeineMg float64 `json:"caffeine_mg"`
}

// FavoriteBeverage : 즐겨찾기 (프리셋/커스텀 중 하나만 참조)
type FavoriteBeverage struct {
	gorm.Model
	UserID           uint  `json:"user_id" gorm:"index"`
	PresetBeverageID *uint `json:"preset_beverage_id"`
	CustomBeverageID *uint `json:"custom_beverage_id"`
	DisplayOrder     int   `json:"display_order"`
}

// IsPreset : 프리셋 음료 즐겨찾기인지
func (f *FavoriteBeverage) IsPreset() bool {
	return f.PresetBeverageID != nil
}

package models

import "time"

// ========================================
// 인증 / 사용자
// ========================================

// SignUpRequest : 회원가입 요청
type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
}

// LoginRequest : 로그인 요청
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse : 인증 응답
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ChangePasswordRequest : 비밀번호 변경 요청
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

// SettingsUpdateRequest : 카페인 설정 수정 요청
// 숫자 범위 검증은 컨트롤러에서 수행 (0도 유효한 값)
type SettingsUpdateRequest struct {
	DailyCaffeineLimit  float64 `json:"daily_caffeine_limit"`
	CaffeineHalfLife    float64 `json:"caffeine_half_life"`
	BedTime             string  `json:"bed_time" binding:"required"`
	TargetSleepCaffeine float64 `json:"target_sleep_caffeine"`
}

// UserCaffeineSettings : 응답에 포함되는 설정 요약
type UserCaffeineSettings struct {
	DailyLimitMg          float64 `json:"daily_limit_mg"`
	TargetSleepCaffeineMg float64 `json:"target_sleep_caffeine_mg"`
	HalfLifeHours         float64 `json:"half_life_hours"`
	BedTime               string  `json:"bed_time"`
}

// SettingsFromUser : 사용자 엔티티에서 설정 요약 생성
func SettingsFromUser(user *User) UserCaffeineSettings {
	return UserCaffeineSettings{
		DailyLimitMg:          user.DailyCaffeineLimit,
		TargetSleepCaffeineMg: user.TargetSleepCaffeine,
		HalfLifeHours:         user.CaffeineHalfLife,
		BedTime:               user.BedTime,
	}
}

// ========================================
// 카페인 상태 / 음료 체크
// ========================================

// CaffeineStatus : 현재 카페인 상태 스냅샷 (표시용, 소수점 1자리)
type CaffeineStatus struct {
	CurrentMg            float64 `json:"current_mg"`
	PredictedAtBedtimeMg float64 `json:"predicted_at_bedtime_mg"`
	TodayTotalMg         float64 `json:"today_total_mg"`
	HoursUntilBedtime    float64 `json:"hours_until_bedtime"`
}

// DrinkRecommendation : 3단계 판정
type DrinkRecommendation string

const (
	RecommendationSafe    DrinkRecommendation = "SAFE"
	RecommendationWarning DrinkRecommendation = "WARNING"
	RecommendationDanger  DrinkRecommendation = "DANGER"
)

// Label : 한글 라벨
func (r DrinkRecommendation) Label() string {
	switch r {
	case RecommendationDanger:
		return "위험 🚫"
	case RecommendationWarning:
		return "주의 ⚠️"
	default:
		return "안전 🙂"
	}
}

// Description : 판정 설명
func (r DrinkRecommendation) Description() string {
	switch r {
	case RecommendationDanger:
		return "일일 카페인 섭취량이 권장 한도를 초과했습니다"
	case RecommendationWarning:
		return "취침 시간까지 카페인이 목표치 이상 남아있을 것으로 예상됩니다"
	default:
		return "일일 카페인 섭취량이 권장 범위 내입니다"
	}
}

// RecommendationInfo : 판정 응답
type RecommendationInfo struct {
	Code        DrinkRecommendation `json:"code"`
	Label       string              `json:"label"`
	Description string              `json:"description"`
}

// Info : 판정 코드를 응답 형태로 변환
func (r DrinkRecommendation) Info() RecommendationInfo {
	return RecommendationInfo{Code: r, Label: r.Label(), Description: r.Description()}
}

// BeverageInfo : 체크 대상 음료 요약
type BeverageInfo struct {
	Name       string  `json:"name"`
	BrandName  string  `json:"brand_name"`
	Category   string  `json:"category"`
	VolumeMl   int     `json:"volume_ml"`
	CaffeineMg float64 `json:"caffeine_mg"`
}

// CurrentCaffeineResponse : GET /api/caffeine/status 응답
type CurrentCaffeineResponse struct {
	Status         CaffeineStatus       `json:"status"`
	Settings       UserCaffeineSettings `json:"settings"`
	Recommendation RecommendationInfo   `json:"recommendation"`
}

// DrinkCheckResponse : 음료 체크 응답 (마시기 전/후 비교)
type DrinkCheckResponse struct {
	Beverage       BeverageInfo         `json:"beverage"`
	Before         CaffeineStatus       `json:"before"`
	After          CaffeineStatus       `json:"after"`
	Settings       UserCaffeineSettings `json:"settings"`
	Recommendation RecommendationInfo   `json:"recommendation"`
	IsSafe         bool                 `json:"is_safe"`
}

// ========================================
// 섭취 기록
// ========================================

// IntakeCreateRequest : 섭취 기록 요청 (시간 생략 시 현재 시각)
type IntakeCreateRequest struct {
	ConsumedAt *time.Time `json:"consumed_at"`
}

// ========================================
// 통계
// ========================================

// TimelineDataPoint : 시간별 예상 카페인량
type TimelineDataPoint struct {
	Time       time.Time `json:"time"`
	CaffeineMg float64   `json:"caffeine_mg"`
}

// CaffeineTimelineResponse : 타임라인 응답
type CaffeineTimelineResponse struct {
	DataPoints          []TimelineDataPoint `json:"data_points"`
	CurrentTime         time.Time           `json:"current_time"`
	Bedtime             time.Time           `json:"bedtime"`
	TargetSleepCaffeine float64             `json:"target_sleep_caffeine"`
}

// DailyStat : 일별 섭취 통계
type DailyStat struct {
	Date            string  `json:"date"` // YYYY-MM-DD
	TotalCaffeineMg float64 `json:"total_caffeine_mg"`
	IntakeCount     int     `json:"intake_count"`
}

// StatisticsPeriod : 통계 조회 기간
type StatisticsPeriod struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// DailyStatisticsResponse : 일별 통계 응답
type DailyStatisticsResponse struct {
	Period        StatisticsPeriod `json:"period"`
	DailyStats    []DailyStat      `json:"daily_stats"`
	PeriodAverage float64          `json:"period_average"`
	DailyLimit    float64          `json:"daily_limit"`
}

// TopBeverageStat : 자주 마신 음료 순위
type TopBeverageStat struct {
	BeverageName string `json:"beverage_name"`
	BrandName    string `json:"brand_name"`
	VolumeMl     int    `json:"volume_ml"`
	Count        int64  `json:"count"`
}

// ========================================
// 음료 / 즐겨찾기
// ========================================

// CustomBeverageCreateRequest : 커스텀 음료 등록 요청
// CaffeineMg 생략 시 카테고리 테이블 기준으로 용량 비례 추정
type CustomBeverageCreateRequest struct {
	Name       string   `json:"name" binding:"required"`
	Category   string   `json:"category" binding:"required"`
	VolumeMl   int      `json:"volume_ml" binding:"required,gt=0"`
	CaffeineMg *float64 `json:"caffeine_mg"`
}

// CustomBeverageUpdateRequest : 커스텀 음료 수정 요청
type CustomBeverageUpdateRequest struct {
	Name       string  `json:"name" binding:"required"`
	VolumeMl   int     `json:"volume_ml" binding:"required,gt=0"`
	CaffeineMg float64 `json:"caffeine_mg"`
}

// FavoriteCreateRequest : 즐겨찾기 추가 요청
type FavoriteCreateRequest struct {
	Type       string `json:"type" binding:"required,oneof=PRESET CUSTOM"`
	BeverageID uint   `json:"beverage_id" binding:"required"`
}

// FavoriteOrderUpdateRequest : 즐겨찾기 순서 변경 요청 (전체 ID 목록)
type FavoriteOrderUpdateRequest struct {
	FavoriteIDs []uint `json:"favorite_ids" binding:"required"`
}

// FavoriteBeverageResponse : 즐겨찾기 응답
type FavoriteBeverageResponse struct {
	ID           uint    `json:"id"`
	Type         string  `json:"type"`
	BeverageID   uint    `json:"beverage_id"`
	Name         string  `json:"name"`
	BrandName    string  `json:"brand_name,omitempty"`
	Category     string  `json:"category"`
	VolumeMl     int     `json:"volume_ml"`
	CaffeineMg   float64 `json:"caffeine_mg"`
	DisplayOrder int     `json:"display_order"`
}

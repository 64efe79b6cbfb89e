package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/HyNS00/caffine-tracker/config"
	"github.com/HyNS00/caffine-tracker/middleware"
	"github.com/HyNS00/caffine-tracker/models"
)

// SignUp : 회원가입
func SignUp(c *gin.Context) {
	var input models.SignUpRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 이메일 중복 체크
	var existingUser models.User
	if err := config.DB.Where("email = ?", input.Email).First(&existingUser).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "이미 사용 중인 이메일입니다"})
		return
	}

	// 비밀번호 해시화
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "비밀번호 처리 실패"})
		return
	}

	// 사용자 생성 (카페인 설정은 기본값으로 시작)
	user := models.User{
		Email:               input.Email,
		Password:            string(hashedPassword),
		Name:                input.Name,
		DailyCaffeineLimit:  models.DefaultDailyCaffeineLimit,
		CaffeineHalfLife:    models.DefaultCaffeineHalfLife,
		BedTime:             models.DefaultBedTime,
		TargetSleepCaffeine: models.DefaultTargetSleepCaffeine,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "사용자 생성 실패"})
		return
	}

	// JWT 토큰 발급
	token, err := middleware.GenerateToken(user.ID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "토큰 생성 실패"})
		return
	}

	c.JSON(http.StatusCreated, models.AuthResponse{
		Token: token,
		User:  user,
	})
}

// Login : 로그인
func Login(c *gin.Context) {
	var input models.LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 사용자 조회
	var user models.User
	if err := config.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "이메일 또는 비밀번호가 틀립니다"})
		return
	}

	// 비밀번호 확인
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "이메일 또는 비밀번호가 틀립니다"})
		return
	}

	// JWT 토큰 발급
	token, err := middleware.GenerateToken(user.ID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "토큰 생성 실패"})
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{
		Token: token,
		User:  user,
	})
}

// GetMe : 내 정보 조회
func GetMe(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "사용자를 찾을 수 없습니다"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateSettings : 카페인 설정 수정
// 계산 엔진에 들어가는 파라미터라 여기(경계)에서 범위를 검증한다.
func UpdateSettings(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "사용자를 찾을 수 없습니다"})
		return
	}

	var input models.SettingsUpdateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.CaffeineHalfLife <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "반감기는 0보다 커야 합니다"})
		return
	}
	if input.DailyCaffeineLimit < 0 || input.TargetSleepCaffeine < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "카페인량은 음수일 수 없습니다"})
		return
	}
	if _, err := time.Parse("15:04", input.BedTime); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "취침 시각은 HH:MM 형식이어야 합니다"})
		return
	}

	user.DailyCaffeineLimit = input.DailyCaffeineLimit
	user.CaffeineHalfLife = input.CaffeineHalfLife
	user.BedTime = input.BedTime
	user.TargetSleepCaffeine = input.TargetSleepCaffeine

	config.DB.Save(&user)
	c.JSON(http.StatusOK, user)
}

// ChangePassword : 비밀번호 변경
func ChangePassword(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var input models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "사용자를 찾을 수 없습니다"})
		return
	}

	// 현재 비밀번호 확인
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.CurrentPassword)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "현재 비밀번호가 틀립니다"})
		return
	}

	// 새 비밀번호 해시화
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "비밀번호 처리 실패"})
		return
	}

	user.Password = string(hashedPassword)
	config.DB.Save(&user)

	c.JSON(http.StatusOK, gin.H{"message": "비밀번호가 변경되었습니다"})
}

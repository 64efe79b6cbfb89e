package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/HyNS00/caffine-tracker/config"
	"github.com/HyNS00/caffine-tracker/controllers"
	"github.com/HyNS00/caffine-tracker/middleware"
)

func main() {
	// 1. 환경변수 로드 (.env 파일)
	config.LoadEnv()

	// 2. DB 연결 + 마이그레이션 + 프리셋 시딩
	config.Connect()

	// 3. Gin 모드 설정
	gin.SetMode(config.GinMode)

	// 4. Gin 라우터 설정
	r := gin.Default()

	// CORS 설정
	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// API 라우팅 정의
	api := r.Group("/api")
	{
		// ========== 인증 API (공개) ==========
		api.POST("/auth/signup", controllers.SignUp) // 회원가입
		api.POST("/auth/login", controllers.Login)   // 로그인

		// ========== 공개 API ==========
		// 프리셋 음료 조회 (인증 불필요)
		api.GET("/beverages", controllers.GetAllBeverages)                 // 전체 음료 목록
		api.GET("/beverages/search", controllers.SearchBeverages)          // 음료 검색
		api.GET("/beverages/categories", controllers.GetBeverageCategories) // 카테고리 테이블
		api.GET("/beverages/:beverageId", controllers.GetBeverage)         // 특정 음료 조회

		// ========== 인증 필요 API ==========
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// 사용자 정보
			protected.GET("/me", controllers.GetMe)                    // 내 정보 조회
			protected.PUT("/me/settings", controllers.UpdateSettings)  // 카페인 설정 수정
			protected.POST("/me/password", controllers.ChangePassword) // 비밀번호 변경

			// 섭취 기록
			protected.POST("/intakes/preset/:beverageId", controllers.RecordPresetIntake) // 프리셋 음료 마심
			protected.POST("/intakes/custom/:beverageId", controllers.RecordCustomIntake) // 커스텀 음료 마심
			protected.GET("/intakes/today", controllers.GetTodayIntakes)                  // 오늘의 기록
			protected.GET("/intakes/history", controllers.GetIntakeHistory)               // 섭취 기록 히스토리
			protected.DELETE("/intakes/:intakeId", controllers.DeleteIntake)              // 섭취 기록 삭제

			// 카페인 상태 / 체크 (핵심!)
			protected.GET("/caffeine/status", controllers.GetCaffeineStatus)                       // 현재 상태 + 판정
			protected.POST("/caffeine/check/preset/:beverageId", controllers.CheckPresetBeverage)  // 마셔도 될까? (프리셋)
			protected.POST("/caffeine/check/custom/:beverageId", controllers.CheckCustomBeverage)  // 마셔도 될까? (커스텀)

			// 통계
			protected.GET("/statistics/timeline", controllers.GetTimeline)            // 시간별 예상 카페인량
			protected.GET("/statistics/daily", controllers.GetDailyStatistics)        // 일별 통계
			protected.GET("/statistics/top-beverages", controllers.GetTopBeverages)   // 자주 마신 음료

			// 커스텀 음료
			protected.POST("/beverages/custom", controllers.CreateCustomBeverage)                 // 등록
			protected.GET("/beverages/custom/mine", controllers.GetMyCustomBeverages)             // 내 목록
			protected.PUT("/beverages/custom/:beverageId", controllers.UpdateCustomBeverage)      // 수정
			protected.DELETE("/beverages/custom/:beverageId", controllers.DeleteCustomBeverage)   // 삭제

			// 즐겨찾기
			protected.POST("/favorites", controllers.AddFavorite)                  // 추가
			protected.GET("/favorites", controllers.GetFavorites)                  // 목록
			protected.DELETE("/favorites/:favoriteId", controllers.DeleteFavorite) // 삭제
			protected.PUT("/favorites/order", controllers.UpdateFavoriteOrder)     // 순서 변경
		}
	}

	// 5. 서버 실행
	log.Printf("🚀 서버 시작: http://localhost:%s", config.ServerPort)
	r.Run(":" + config.ServerPort)
}

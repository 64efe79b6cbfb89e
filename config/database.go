package config

import (
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/HyNS00/caffine-tracker/models"
)

var DB *gorm.DB

func Connect() {
	// .env에서 로드된 환경변수 사용
	dsn := GetDSN()

	// GORM 연결 시도
	database, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})

	if err != nil {
		// 연결 실패 시 에러 로그 출력하고 프로그램 종료
		log.Fatal("❌ MySQL 연결 실패! .env 파일을 확인해주세요: ", err)
	}

	log.Println("✅ MySQL 연결 성공!")

	// 테이블 자동 생성 (Auto Migration)
	database.AutoMigrate(
		&models.User{},
		&models.CaffeineIntake{},   // 섭취 기록
		&models.PresetBeverage{},   // 기본 제공 음료
		&models.CustomBeverage{},   // 사용자 등록 음료
		&models.FavoriteBeverage{}, // 즐겨찾기
	)

	DB = database

	// 프리셋 음료 마스터 데이터 시딩
	SeedPresetBeverages()
}

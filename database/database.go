package database

import (
	"fmt"
	"log"

	"contentai/config"
	"contentai/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// BuildDSN 构建 MySQL DSN 连接字符串
func BuildDSN(cfg config.DatabaseConfig) string {
	charset := cfg.Charset
	if charset == "" {
		charset = "utf8mb4"
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local",
		cfg.Username,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		charset,
	)
}

// Init 初始化数据库连接
func Init(cfg *config.Config) error {
	logLevel := logger.Info
	if cfg.Server.Mode == "release" {
		logLevel = logger.Warn
	}

	var err error
	DB, err = gorm.Open(mysql.Open(BuildDSN(cfg.Database)), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return fmt.Errorf("连接数据库失败: %w", err)
	}

	// 获取底层 *sql.DB 连接池配置
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	// 设置连接池参数
	sqlDB.SetMaxIdleConns(10)  // 最大空闲连接数
	sqlDB.SetMaxOpenConns(100) // 最大打开连接数

	if err := Migrate(DB); err != nil {
		return err
	}

	log.Println("数据库初始化成功")
	return nil
}

// Migrate 自动迁移数据库表，content_ais.content_id 外键带 ON DELETE CASCADE
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Content{},
		&models.ContentAI{},
	); err != nil {
		return fmt.Errorf("迁移数据库失败: %w", err)
	}
	return nil
}

// GetDB 获取数据库连接
func GetDB() *gorm.DB {
	return DB
}

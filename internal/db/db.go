package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/portfolioapi/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB 是一个全局的数据库连接实例
var DB *gorm.DB

// Init 初始化数据库连接并执行自动迁移。
// sqlite 驱动下 path 为空时回退到默认值 portfolio.db。
func Init(cfg config.DatabaseConfig, gormLogger logger.Interface) error {
	gdb, err := Open(cfg, gormLogger)
	if err != nil {
		return err
	}

	if err := Migrate(gdb); err != nil {
		return err
	}

	DB = gdb
	return nil
}

// Open 根据配置的驱动建立连接，不执行迁移。
func Open(cfg config.DatabaseConfig, gormLogger logger.Interface) (*gorm.DB, error) {
	gormConfig := &gorm.Config{}
	if gormLogger != nil {
		gormConfig.Logger = gormLogger
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "", config.DriverSQLite:
		path := strings.TrimSpace(cfg.Path)
		if path == "" {
			path = "portfolio.db"
		}
		if err := ensureParentDir(path); err != nil {
			return nil, err
		}
		return gorm.Open(sqlite.Open(path), gormConfig)
	case config.DriverPostgres:
		if strings.TrimSpace(cfg.DSN) == "" {
			return nil, errors.New("postgres dsn is empty")
		}
		return gorm.Open(postgres.Open(cfg.DSN), gormConfig)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Models 返回需要自动迁移的全部模型，顺序保证外键依赖先建表。
func Models() []interface{} {
	return []interface{}{
		&User{},
		&Category{},
		&Tag{},
		&BlogPost{},
		&Project{},
		&ContactMessage{},
		&Newsletter{},
	}
}

// Migrate 自动迁移模式，为核心模型创建表
func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func ensureParentDir(path string) error {
	if strings.HasPrefix(path, "file:") || path == ":memory:" {
		return nil
	}

	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("database path parent is not a directory")
		}
		return nil
	}

	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}

	return err
}

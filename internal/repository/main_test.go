package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/portfolioapi/internal/db"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRepositoryTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:repository-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return gormDB, mock
}

type fixtures struct {
	author   db.User
	webDev   db.Category
	devops   db.Category
	goTag    db.Tag
	reactTag db.Tag
}

func seedFixtures(t *testing.T, gdb *gorm.DB) fixtures {
	t.Helper()

	f := fixtures{
		author:   db.User{Username: "cossette", FirstName: "Cossette", LastName: "Alexis"},
		webDev:   db.Category{Name: "Web Development", Slug: "web-development", Description: "Frontend and backend"},
		devops:   db.Category{Name: "DevOps", Slug: "devops"},
		goTag:    db.Tag{Name: "Go", Slug: "go", Color: "#00ADD8"},
		reactTag: db.Tag{Name: "React", Slug: "react", Color: "#61DAFB"},
	}
	require.NoError(t, gdb.Create(&f.author).Error)
	require.NoError(t, gdb.Create(&f.webDev).Error)
	require.NoError(t, gdb.Create(&f.devops).Error)
	require.NoError(t, gdb.Create(&f.goTag).Error)
	require.NoError(t, gdb.Create(&f.reactTag).Error)
	return f
}

func createPost(t *testing.T, gdb *gorm.DB, post db.BlogPost, tags ...db.Tag) db.BlogPost {
	t.Helper()

	if post.Slug == "" {
		post.Slug = fmt.Sprintf("post-%d", time.Now().UnixNano())
	}
	post.Tags = tags
	require.NoError(t, gdb.Create(&post).Error)
	return post
}

func publishedAt(day int) *time.Time {
	ts := time.Date(2024, time.January, day, 10, 0, 0, 0, time.UTC)
	return &ts
}

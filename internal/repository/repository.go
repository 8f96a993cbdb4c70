// Package repository provides the store access used by the content services.
// Every query chain lives behind an explicit interface so the services only
// depend on method contracts.
package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup by slug matches no visible row.
var ErrNotFound = errors.New("record not found")

func translateError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching term as a literal
// substring. Use together with ESCAPE '\'.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// caseInsensitiveLike 返回当前驱动下大小写不敏感的匹配运算符。
// SQLite 的 LIKE 本身忽略 ASCII 大小写，两侧都不做 LOWER。
func caseInsensitiveLike(gdb *gorm.DB) string {
	if gdb.Dialector != nil && gdb.Dialector.Name() == "postgres" {
		return "ILIKE"
	}
	return "LIKE"
}

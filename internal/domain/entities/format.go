package entities

import (
	"path/filepath"
	"strings"
)

// Format идентификатор выходного формата
type Format string

// Поддерживаемые форматы
const (
	FormatJPEG Format = "jpeg"
	FormatPNG  Format = "png"
	FormatWebP Format = "webp"
	FormatPDF  Format = "pdf"
)

// ParseFormat определяет формат по строковому идентификатору или расширению файла
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "jpeg", "jpg":
		return FormatJPEG, nil
	case "png":
		return FormatPNG, nil
	case "webp":
		return FormatWebP, nil
	case "pdf":
		return FormatPDF, nil
	default:
		return "", ErrUnsupportedFormat
	}
}

// FormatFromPath определяет формат по расширению пути к файлу
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// IsRaster проверяет, является ли формат растровым
func (f Format) IsRaster() bool {
	return f == FormatJPEG || f == FormatPNG || f == FormatWebP
}

// IsLossy проверяет, поддерживает ли формат плавную регулировку качества
func (f Format) IsLossy() bool {
	return f == FormatJPEG || f == FormatWebP
}

// Extension возвращает расширение файла для формата
func (f Format) Extension() string {
	switch f {
	case FormatJPEG:
		return ".jpg"
	case FormatPNG:
		return ".png"
	case FormatWebP:
		return ".webp"
	case FormatPDF:
		return ".pdf"
	default:
		return ""
	}
}

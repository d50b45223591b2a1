package entities

import "errors"

// Доменные ошибки
var (
	ErrInvalidTargetSize    = errors.New("целевой размер должен быть положительным")
	ErrInvalidMaxDimensions = errors.New("максимальные размеры должны быть положительными")
	ErrUnsupportedFormat    = errors.New("неподдерживаемый формат")
	ErrInvalidPDFMode       = errors.New("режим обработки PDF должен быть pages или document")
	ErrDecodeFailed         = errors.New("не удалось декодировать источник")
	ErrEncodeFailed         = errors.New("не удалось закодировать растр")
	ErrRenderFailed         = errors.New("не удалось отрисовать страницу документа")
	ErrEmptyDocument        = errors.New("документ не содержит страниц")
	ErrInvalidPageNumber    = errors.New("неверный номер страницы")
	ErrDirectoryNotFound    = errors.New("директория не найдена")
)

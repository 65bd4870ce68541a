package domain

// LocalizedText локализованный текст: код языка -> значение
// Каталог приходит с переводами ("en", "de", "ar", "tr" и т.д.)
type LocalizedText map[string]string

// Resolve возвращает текст для указанного языка
// При отсутствии перевода используется английский, затем любой доступный
func (t LocalizedText) Resolve(lang string) string {
	if t == nil {
		return ""
	}
	if v, ok := t[lang]; ok && v != "" {
		return v
	}
	if v, ok := t[DefaultLanguage]; ok && v != "" {
		return v
	}
	for _, v := range t {
		if v != "" {
			return v
		}
	}
	return ""
}

// ServiceCategory группа услуг салона
// Slug - стабильный ключ, используется в URL и deep-link параметрах
type ServiceCategory struct {
	ID          int64
	Slug        string
	Name        LocalizedText
	Description LocalizedText
}

// Service услуга салона
// Неизменяема в течение сессии бронирования
type Service struct {
	ID              int64
	Slug            string
	CategorySlug    string
	Name            LocalizedText
	Description     LocalizedText
	DurationMinutes int
	Price           float64
	ImageURL        *string
}

// BelongsTo возвращает true, если услуга принадлежит указанной категории
func (s *Service) BelongsTo(categorySlug string) bool {
	return s.CategorySlug == categorySlug
}

package models

const (
	// DefaultSessionTTL время жизни сессии в Redis (секунды)
	DefaultSessionTTL = 24 * 60 * 60

	// WorkerQueueSize размер очереди воркера
	WorkerQueueSize = 1000

	// RateLimitRequests количество запросов в окне
	RateLimitRequests = 20

	// RateLimitWindow окно ограничения частоты запросов (секунды)
	RateLimitWindow = 60

	// MinReviewRating / MaxReviewRating границы оценки после события
	MinReviewRating = 1
	MaxReviewRating = 5

	// MaxChefRating верхняя граница рейтинга шефа
	MaxChefRating = 5
)

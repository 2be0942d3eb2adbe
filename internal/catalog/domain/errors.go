package domain

import "errors"

var (
	// ErrCarNotFound машина не найдена
	ErrCarNotFound = errors.New("car not found")

	// ErrDriverNotFound водитель не найден
	ErrDriverNotFound = errors.New("driver not found")

	// ErrReviewNotFound отзыв не найден
	ErrReviewNotFound = errors.New("review not found")

	// ErrInvalidRating рейтинг должен быть от 1 до 5
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// ErrEmptyComment комментарий обязателен
	ErrEmptyComment = errors.New("comment is required")

	// ErrReviewTargetMissing отзыв должен указывать машину или водителя
	ErrReviewTargetMissing = errors.New("review must reference a car or a driver")

	// ErrDuplicateReview пользователь уже оставил отзыв на это бронирование
	ErrDuplicateReview = errors.New("review for this booking already exists")
)

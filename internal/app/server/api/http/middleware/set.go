package middleware

import (
	"github.com/danielgtaylor/huma/v2"
)

type Func = func(ctx huma.Context, next func(huma.Context))

// Set раздает операциям наборы мидлварей: общий для всех и общий + аутентификация
type Set struct {
	common huma.Middlewares
	auth   Func
}

// NewSet собирает наборы. auth может быть nil, тогда Protected совпадает с Public.
func NewSet(auth Func, common ...Func) *Set {
	s := &Set{auth: auth}
	for _, mw := range common {
		s.common = append(s.common, mw)
	}
	return s
}

// Public возвращает копию общего набора
func (s *Set) Public() huma.Middlewares {
	out := make(huma.Middlewares, 0, len(s.common))
	return append(out, s.common...)
}

// Protected - общий набор, за которым идет проверка токена
func (s *Set) Protected() huma.Middlewares {
	out := s.Public()
	if s.auth != nil {
		out = append(out, s.auth)
	}
	return out
}

package repository

import "errors"

var (
	ErrProblemNotFound = errors.New("problem not found")

	ErrMongodb = errors.New("mongodb error happen")
	ErrRedis   = errors.New("redis error happen")
)

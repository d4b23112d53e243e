package mock

import (
	_ "go.uber.org/mock/mockgen/model"
)

//go:generate mockgen -destination=mock_git.go -package=mock github.com/coxswain-io/coxswain/utils/git Client

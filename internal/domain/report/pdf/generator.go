package pdf

import "github.com/leeboklee/rsvshop-sub002/internal/domain/report"

type Generator interface {
	Generate(s report.Summary) ([]byte, error)
}

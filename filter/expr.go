package filter

import (
	"context"

	"github.com/rushteam/boardrec/core"
	"github.com/rushteam/boardrec/pkg/dsl"
)

// ExprFilter 保留满足 CEL 表达式的条目，其余过滤掉。
type ExprFilter struct {
	expr *dsl.Expr
}

// NewExprFilter 编译表达式，非法表达式返回 INVALID_INPUT 错误。
func NewExprFilter(expr string) (*ExprFilter, error) {
	compiled, err := dsl.Compile(expr)
	if err != nil {
		return nil, core.NewDomainError(core.ModuleService, core.ErrorCodeInvalidInput, "filter: "+err.Error())
	}
	return &ExprFilter{expr: compiled}, nil
}

func (f *ExprFilter) Name() string {
	return "filter.expr"
}

func (f *ExprFilter) ShouldFilter(_ context.Context, game *core.Game) (bool, error) {
	ok, err := f.expr.Match(game)
	if err != nil {
		return false, err
	}
	return !ok, nil
}

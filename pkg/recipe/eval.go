package recipe

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlasm/pkg/builder"
	"github.com/pseudomuto/sqlasm/pkg/utils"
)

var (
	// kinds maps chain heads to statement constructors.
	kinds = map[string]func(builder.Factory) builder.Statement{
		"Select":      func(f builder.Factory) builder.Statement { return f.NewSelect() },
		"Insert":      func(f builder.Factory) builder.Statement { return f.NewInsert() },
		"Update":      func(f builder.Factory) builder.Statement { return f.NewUpdate() },
		"Delete":      func(f builder.Factory) builder.Statement { return f.NewDelete() },
		"CreateTable": func(f builder.Factory) builder.Statement { return f.NewCreateTable() },
		"AlterTable":  func(f builder.Factory) builder.Statement { return f.NewAlterTable() },
		"CreateIndex": func(f builder.Factory) builder.Statement { return f.NewCreateIndex() },
		"DropTable":   func(f builder.Factory) builder.Statement { return f.NewDropTable() },
		"DropIndex":   func(f builder.Factory) builder.Statement { return f.NewDropIndex() },
		"Values":      func(f builder.Factory) builder.Statement { return f.NewValues() },
		"Transaction": func(f builder.Factory) builder.Statement { return f.NewTransaction() },
	}

	// aliases maps alternative call names to builder methods.
	aliases = map[string]string{
		"WhereClause":  "Where",
		"HavingClause": "Having",
	}

	// hidden lists builder methods that are not clause setters.
	hidden = map[string]bool{
		"Check":   true,
		"Clone":   true,
		"Dialect": true,
		"Pretty":  true,
		"Render":  true,
		"String":  true,
	}

	statementType = reflect.TypeFor[builder.Statement]()
	stringType    = reflect.TypeFor[string]()
	stringerType  = reflect.TypeFor[fmt.Stringer]()
)

// Evaluator turns parsed chains into statements bound to a dialect.
type Evaluator struct {
	factory builder.Factory
}

// NewEvaluator creates an Evaluator building statements with factory.
func NewEvaluator(factory builder.Factory) *Evaluator {
	return &Evaluator{factory: factory}
}

// Eval evaluates every chain of the recipe, in order.
func (e *Evaluator) Eval(r *Recipe) ([]builder.Statement, error) {
	stmts := make([]builder.Statement, 0, len(r.Chains))
	for _, c := range r.Chains {
		stmt, err := e.EvalChain(c)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}

	return stmts, nil
}

// EvalChain builds the statement described by a single chain.
//
// Call names are matched against the builder methods in snake_case,
// camelCase or PascalCase. String parameters take string literals, statement
// parameters take nested chains (or a string literal, embedded as raw SQL) and
// clause parameters take a bare clause name:
//
//	Select.select("id").raw_before(Where, "/* tenant */").union(Select.select("1"))
func (e *Evaluator) EvalChain(c *Chain) (builder.Statement, error) {
	newStmt, ok := kinds[utils.PascalCase(c.Head)]
	if !ok {
		return nil, errors.Errorf("%s: unknown statement kind %q", c.Pos, c.Head)
	}

	stmt := newStmt(e.factory)
	receiver := reflect.ValueOf(stmt)
	for _, call := range c.Calls {
		if err := e.apply(receiver, call); err != nil {
			return nil, err
		}
	}

	return stmt, nil
}

func (e *Evaluator) apply(receiver reflect.Value, call *Call) error {
	name := utils.PascalCase(call.Name)
	if alias, ok := aliases[name]; ok {
		name = alias
	}

	method := receiver.MethodByName(name)
	if !method.IsValid() || hidden[name] {
		return errors.Errorf("%s: %s has no method %q", call.Pos, kindName(receiver), call.Name)
	}

	mt := method.Type()
	if mt.NumIn() != len(call.Args) {
		return errors.Errorf("%s: %s expects %d argument(s), got %d", call.Pos, call.Name, mt.NumIn(), len(call.Args))
	}

	args := make([]reflect.Value, len(call.Args))
	for i, arg := range call.Args {
		v, err := e.convert(arg, mt.In(i))
		if err != nil {
			return errors.Wrapf(err, "%s: argument %d of %s", call.Pos, i+1, call.Name)
		}
		args[i] = v
	}

	method.Call(args)
	return nil
}

func (e *Evaluator) convert(arg *Arg, t reflect.Type) (reflect.Value, error) {
	switch {
	case t == stringType:
		if arg.String == nil {
			return reflect.Value{}, errors.New("expected a string")
		}
		return reflect.ValueOf(*arg.String), nil

	case t.Kind() == reflect.Int && t.Implements(stringerType):
		if arg.Chain == nil || len(arg.Chain.Calls) > 0 {
			return reflect.Value{}, errors.Errorf("expected a %s name", t.Name())
		}
		return clauseValue(t, arg.Chain.Head)

	case t == statementType || t.Implements(statementType):
		var stmt builder.Statement
		if arg.String != nil {
			stmt = builder.Raw(*arg.String)
		} else {
			nested, err := e.EvalChain(arg.Chain)
			if err != nil {
				return reflect.Value{}, err
			}
			stmt = nested
		}

		v := reflect.ValueOf(stmt)
		if !v.Type().AssignableTo(t) {
			return reflect.Value{}, errors.Errorf("expected a %s statement", strings.TrimPrefix(t.String(), "*builder."))
		}
		return v, nil

	default:
		return reflect.Value{}, errors.Errorf("unsupported parameter type %s", t)
	}
}

// clauseValue resolves a clause name for one of the builder clause
// enumerations. Names are matched case-insensitively.
func clauseValue(t reflect.Type, name string) (reflect.Value, error) {
	want := utils.PascalCase(name)
	v := reflect.New(t).Elem()
	for i := int64(0); ; i++ {
		v.SetInt(i)
		known := v.Interface().(fmt.Stringer).String()
		if known == "" {
			break
		}
		if strings.EqualFold(known, want) {
			return v, nil
		}
	}

	return reflect.Value{}, errors.Errorf("unknown %s %q", t.Name(), name)
}

func kindName(receiver reflect.Value) string {
	return receiver.Type().Elem().Name()
}

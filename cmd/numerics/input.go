// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/numerics/expr"
	"github.com/katalvlaran/numerics/matrix"
)

// parseFunction parses an expression in x.
func parseFunction(src string) (*expr.Expr, error) {
	e, err := expr.Parse(src)
	if err != nil {
		return nil, err
	}

	return e, nil
}

// parseScalar accepts a plain number or a constant expression such as "pi/2".
func parseScalar(name, src string) (float64, error) {
	e, err := expr.Parse(src)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	if e.DependsOnX() {
		return 0, fmt.Errorf("%w: %s %q must not depend on x", errUsage, name, src)
	}

	return e.Evaluate(0), nil
}

// readSource returns src itself, or the contents of the file when src is "@path".
func readSource(src string) ([]byte, error) {
	if path, ok := strings.CutPrefix(src, "@"); ok {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errUsage, err)
		}
		return data, nil
	}

	return []byte(src), nil
}

// parseMatrix decodes a YAML sequence of rows: "[[4, 1], [1, 3]]" or "@a.yaml".
func parseMatrix(src string) (*matrix.Dense, error) {
	data, err := readSource(src)
	if err != nil {
		return nil, err
	}
	var rows [][]float64
	if err = yaml.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("%w: matrix: %v", errUsage, err)
	}
	m, err := matrix.NewDenseFrom(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: matrix: %v", errUsage, err)
	}

	return m, nil
}

// parseVector decodes a YAML sequence of numbers: "[1, 2]" or "@b.yaml".
func parseVector(name, src string) ([]float64, error) {
	data, err := readSource(src)
	if err != nil {
		return nil, err
	}
	var v []float64
	if err = yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errUsage, name, err)
	}
	if len(v) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", errUsage, name)
	}

	return v, nil
}

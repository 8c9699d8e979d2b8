//go:build !nogl

package main

import (
	_ "github.com/gogpu/fxchain/backend/gl41"
)

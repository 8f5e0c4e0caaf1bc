// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

//go:build !debug
// +build !debug

package mdd

// _DEBUG and _LOGLEVEL are the default, no-op values used by a normal build.
// Building with -tags debug switches these on (see debug.go) and enables
// tracing of GC, resize, and sift passes plus logging of recorded errors.
const _DEBUG bool = false
const _LOGLEVEL int = 0

package main

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/alecthomas/kong"
)

/* Accepts exactly 0 or 1 */
type stateMapper struct{}

func (h stateMapper) Decode(ctx *kong.DecodeContext, target reflect.Value) error {
	var value string
	err := ctx.Scan.PopValueInto("state", &value)
	if err != nil {
		return err
	}
	i, err := strconv.Atoi(value)
	if err != nil || (i != 0 && i != 1) {
		return fmt.Errorf("invalid choice %q (choose from 0, 1)", value)
	}
	target.SetUint(uint64(i))
	return nil
}

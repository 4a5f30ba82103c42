// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bfp

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	a := assert.New(t)
	a.Equal("F<-8>(300)", New[ExpN8](300).String())
	a.Equal("F<-4>(300)", New[ExpN4](300).String())
	a.Equal("F<0>(0)", New[Exp0](0).String())
	a.Equal("F<32>(-1)", New[ExpP32](-1).String())
	a.Equal("F<-40>(-2147483648)", Min[expN40]().String())
	a.Equal("F<2147483647>(2147483647)", Max[expMax]().String())
	a.Equal("F<-8>(300)", New[ExpN8](300).GoString())

	s8, s4 := New[ExpN8](300).String(), New[ExpN4](300).String()
	a.Contains(s8, "-8")
	a.Contains(s8, "300")
	a.NotEqual(s8, s4)
	a.NotEqual(New[ExpN8](300).String(), New[ExpN8](-300).String())
}

func TestFormat(t *testing.T) {
	a := assert.New(t)
	minusOne := New[ExpN8](-1)
	v := New[ExpN8](300)
	tests := []struct {
		format string
		arg    interface{}
		res    string
	}{
		{"%b", minusOne, strings.Repeat("1", 32)},
		{"%X", minusOne, "FFFFFFFF"},
		{"%x", minusOne, "ffffffff"},
		{"%o", minusOne, "37777777777"},
		{"%O", minusOne, "0o37777777777"},
		{"%d", minusOne, "-1"},
		{"%b", v, "100101100"},
		{"%x", v, "12c"},
		{"%X", v, "12C"},
		{"%#x", v, "0x12c"},
		{"%08X", v, "0000012C"},
		{"%032b", v, "00000000000000000000000100101100"},
		{"%o", v, "454"},
		{"%d", v, "300"},
		{"%6d", v, "   300"},
		{"%b", Min[Exp0](), "1" + strings.Repeat("0", 31)},
		{"%x", Max[Exp0](), "7fffffff"},
		{"%v", v, "F<-8>(300)"},
		{"%s", v, "F<-8>(300)"},
		{"%#v", v, "F<-8>(300)"},
		{"%12v", v, "  F<-8>(300)"},
		{"%-12s|", v, "F<-8>(300)  |"},
		{"%q", v, `"F<-8>(300)"`},
		{"%f", v, "%!f(bfp.Value=F<-8>(300))"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, fmt.Sprintf(test.format, test.arg))
		})
	}
}

func TestFormatMatchesUint32(t *testing.T) {
	a := assert.New(t)
	for _, s := range testSignificands() {
		v := New[ExpN16](s)
		for _, verb := range []string{"%b", "%o", "%x", "%X", "%#x", "%010o"} {
			a.Equal(fmt.Sprintf(verb, uint32(s)), fmt.Sprintf(verb, v))
		}
		a.Equal(fmt.Sprint(int32(s)), fmt.Sprintf("%d", v))
	}
	a.Equal(fmt.Sprintf("%x", uint32(math.MaxUint32)), fmt.Sprintf("%x", FromBits[Exp0](math.MaxUint32)))
}

func TestPrintln(t *testing.T) {
	a := assert.New(t)
	a.Equal("F<-16>(65536)\n", fmt.Sprintln(New[ExpN16](1<<16)))
	a.Equal("[F<-8>(1) F<-8>(2)]", fmt.Sprint([]Q24_8{New[ExpN8](1), New[ExpN8](2)}))
}

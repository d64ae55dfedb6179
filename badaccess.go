// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package result

import (
	"github.com/zeebo/errs"
)

// BadAccess is the error class raised when an accessor asks for the payload
// that is not live: Value on an error result, or Err on a success result.
//
// Panicking accessors panic with an error of this class; their Try twins
// return it. Use BadAccess.Has to recognize it after recover.
var BadAccess = errs.Class("bad access")

func errValueOnErr() error {
	return BadAccess.New("value requested from error result")
}

func errErrOnValue() error {
	return BadAccess.New("error requested from success result")
}

func errNilPairErr() error {
	return BadAccess.New("error result carries a nil error")
}

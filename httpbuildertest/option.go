// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpbuildertest

import "github.com/stretchr/testify/suite"

// OptionSuite is a test suite for options that act on a *T.  Target is
// reset to a new T before each test and subtest.
type OptionSuite[T any] struct {
	suite.Suite
	Target *T
}

func (suite *OptionSuite[T]) SetupTest() {
	suite.Target = new(T)
}

func (suite *OptionSuite[T]) SetupSubTest() {
	suite.Target = new(T)
}

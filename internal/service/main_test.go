// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// sequentialIDs hands out ids in order and then repeats the last one.
type sequentialIDs struct {
	ids []string
	i   int
}

func newSequentialIDs(ids ...string) *sequentialIDs {
	return &sequentialIDs{ids: ids}
}

func (s *sequentialIDs) Generate() string {
	id := s.ids[s.i]
	if s.i < len(s.ids)-1 {
		s.i++
	}
	return id
}

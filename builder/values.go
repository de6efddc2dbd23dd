// SPDX-License-Identifier: MIT
// Package: dsviz/builder

package builder

import "github.com/cockroachdb/errors"

// Values draws count integers uniformly from the closed range [lo, hi].
// Duplicates are possible; engines that reject duplicates simply report them.
func Values(count, lo, hi int, opts ...BuilderOption) ([]int, error) {
	if count < 0 {
		return nil, errors.Wrapf(ErrInvalidCount, "Values: count=%d", count)
	}
	if lo > hi {
		return nil, errors.Wrapf(ErrInvalidRange, "Values: lo=%d > hi=%d", lo, hi)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, errors.Wrap(ErrNeedRandSource, "Values")
	}
	out := make([]int, count)
	for i := range out {
		out[i] = cfg.between(lo, hi)
	}

	return out, nil
}

// OmeoneChain - Social Dining Recommendations Powered by Trust
// Copyright 2026 OmeoneChain Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/OmeoneChain/omeonechain-sub013

package trust

import "errors"

// ErrInvalidInput marks requests rejected at the engine boundary:
// missing identifiers, NaN or infinite numeric fields, negative social
// distances, or content dated in the future. Missing evidence (empty
// interaction lists, unreachable authors) is NOT an error; those cases
// degrade to zero-valued signals as part of normal scoring.
var ErrInvalidInput = errors.New("invalid input")

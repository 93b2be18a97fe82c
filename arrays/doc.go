// Package arrays collects small slice algorithms:
//
//   - Rotate: in-place left rotation by the juggling (GCD cycles) algorithm,
//     O(n) time and O(1) extra space.
//   - CountingSort / CountingSortBy: stable counting sort on integer keys,
//     O(n + span) time and space, with a guard against huge key spans.
//   - TernarySearch: lookup in an ascending slice, O(log n) comparisons.
//   - TernaryMax: argmax of a unimodal integer function over [lo, hi].
package arrays

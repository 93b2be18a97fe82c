package arrays

// Rotate rotates a left by d positions in place. A negative d rotates right.
// d is reduced modulo len(a), so any value is accepted.
//
// The juggling algorithm moves every element exactly once along gcd(n, d)
// independent cycles.
func Rotate[T any](a []T, d int) {
	n := len(a)
	if n == 0 {
		return
	}
	d = ((d % n) + n) % n
	if d == 0 {
		return
	}

	cycles := gcd(n, d)
	for i := 0; i < cycles; i++ {
		tmp := a[i]
		j := i
		for {
			k := j + d
			if k >= n {
				k -= n
			}
			if k == i {
				break
			}
			a[j] = a[k]
			j = k
		}
		a[j] = tmp
	}
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

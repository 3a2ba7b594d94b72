package editor

var samples = [numLanguages]string{
	JavaScript: `function fibonacci(n) {
  if (n <= 1) return n;
  return fibonacci(n - 1) + fibonacci(n - 2);
}

console.log(fibonacci(10));`,

	Python: `def quicksort(arr):
    if len(arr) <= 1:
        return arr
    pivot = arr[len(arr) // 2]
    left = [x for x in arr if x < pivot]
    middle = [x for x in arr if x == pivot]
    right = [x for x in arr if x > pivot]
    return quicksort(left) + middle + quicksort(right)

print(quicksort([3,6,8,10,1,2,1]))`,

	TypeScript: `interface User {
  id: number;
  name: string;
  email: string;
}

const users: User[] = [
  { id: 1, name: 'Alice', email: 'alice@example.com' },
  { id: 2, name: 'Bob', email: 'bob@example.com' }
];

function findUser(id: number): User | undefined {
  return users.find(user => user.id === id);
}`,
}

// Sample returns the canned source for l. Unknown languages have no sample.
func Sample(l Language) string {
	if !l.Valid() {
		return ""
	}
	return samples[l]
}

// Samples returns a copy of the sample table keyed by language key. The page
// embeds it so the browser switches tabs with the same texts.
func Samples() map[string]string {
	out := make(map[string]string, numLanguages)
	for _, l := range Languages() {
		out[l.String()] = samples[l]
	}
	return out
}

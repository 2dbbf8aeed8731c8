package exercise

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"벤치프레스", BenchPress},
		{"벤치 프레스", BenchPress},
		{"  스쿼트 ", Squat},
		{"바벨로우", BarbellRow},
		{"데드리프트", Deadlift},
		{"오버헤드프레스", OverheadPress},
		{"오버헤드 프레스", OverheadPress},
		{"Bench Press", BenchPress},
		{"  Front Squat  ", "Front Squat"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "input %q", tt.in)
	}

	assert.Equal(t, Normalize("벤치프레스"), Normalize("벤치 프레스"))
}

func TestNormalize_Idempotent(t *testing.T) {
	for alias := range Aliases() {
		once := Normalize(alias)
		assert.Equal(t, once, Normalize(once), "alias %q", alias)
	}
	for _, k := range Known {
		assert.Equal(t, k, Normalize(k))
	}

	faker := gofakeit.New(42)
	for i := 0; i < 200; i++ {
		s := faker.Sentence(faker.Number(1, 4))
		if i%3 == 0 {
			s = "  " + s + "\t"
		}
		once := Normalize(s)
		assert.Equal(t, once, Normalize(once), "input %q", s)
	}
}

func TestIsKnown(t *testing.T) {
	assert.True(t, IsKnown("스쿼트"))
	assert.True(t, IsKnown("Deadlift"))
	assert.False(t, IsKnown("Curl"))
}

package weather

import "testing"

func TestClassifyKnownCodes(t *testing.T) {
	tests := []struct {
		code int
		want ConditionInfo
	}{
		{0, ConditionInfo{ConditionSunny, "Clear sky", "sunny"}},
		{2, ConditionInfo{ConditionPartlyCloudy, "Partly cloudy", "partly-cloudy"}},
		{45, ConditionInfo{ConditionCloudy, "Fog", "cloudy"}},
		{63, ConditionInfo{ConditionRainy, "Moderate rain", "rainy"}},
		{86, ConditionInfo{ConditionSnowy, "Heavy snow showers", "snowy"}},
		{99, ConditionInfo{ConditionRainy, "Thunderstorm with heavy hail", "rainy"}},
	}

	for _, tt := range tests {
		if got := Classify(tt.code); got != tt.want {
			t.Errorf("Classify(%d) = %+v, want %+v", tt.code, got, tt.want)
		}
	}
}

func TestClassifyIsStableAndIconMatchesCondition(t *testing.T) {
	for code, want := range weatherCodes {
		for i := 0; i < 3; i++ {
			got := Classify(code)
			if got != want {
				t.Fatalf("Classify(%d) call %d = %+v, want %+v", code, i, got, want)
			}
			if got.Icon != string(got.Condition) {
				t.Fatalf("Classify(%d): icon %q differs from condition %q", code, got.Icon, got.Condition)
			}
		}
	}
}

func TestClassifyUnknownCode(t *testing.T) {
	want := ConditionInfo{ConditionCloudy, "Unknown", "cloudy"}
	for _, code := range []int{-1, 4, 50, 100, 1000} {
		if got := Classify(code); got != want {
			t.Errorf("Classify(%d) = %+v, want %+v", code, got, want)
		}
	}
}

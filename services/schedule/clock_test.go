package schedule

import "testing"

func TestParseClockTime_TwelveAndTwentyFourHour(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"9:00 AM", 540},
		{"2:00 PM", 840},
		{"14:00", 840},
		{"12:00 AM", 0},
		{"12:00 PM", 720},
		{"  2:30 pm ", 870},
		{"09:15", 555},
	}
	for _, c := range cases {
		if got := ParseClockTime(c.in); got != c.want {
			t.Errorf("ParseClockTime(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParseClockTime_TwelveHourMatchesTwentyFourHour(t *testing.T) {
	pairs := [][2]string{
		{"2:00 PM", "14:00"},
		{"9:00 AM", "09:00"},
		{"11:30 PM", "23:30"},
		{"12:01 AM", "00:01"},
	}
	for _, p := range pairs {
		if ParseClockTime(p[0]) != ParseClockTime(p[1]) {
			t.Errorf("ParseClockTime(%q) != ParseClockTime(%q)", p[0], p[1])
		}
	}
}

func TestParseClockTime_MalformedReturnsZero(t *testing.T) {
	for _, in := range []string{"", "noon", "930 AM", "9:xx AM", "25:00", "9:75"} {
		if got := ParseClockTime(in); got != 0 {
			t.Errorf("ParseClockTime(%q) = %d, want 0", in, got)
		}
	}
}

func TestParseServiceDuration(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"1.5 hours", 90},
		{"30 min", 30},
		{"2 hours", 120},
		{"45 mins", 45},
		{"1 hr", 60},
		{"90m", 90},
		{"garbage", 60},
		{"", 60},
	}
	for _, c := range cases {
		if got := ParseServiceDuration(c.in); got != c.want {
			t.Errorf("ParseServiceDuration(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestOverlaps(t *testing.T) {
	// Touching endpoints do not conflict.
	if Overlaps(540, 600, 600, 660) {
		t.Error("adjacent intervals should not overlap")
	}
	if !Overlaps(540, 601, 600, 660) {
		t.Error("expected one-minute overlap")
	}
	// Containment.
	if !Overlaps(540, 720, 600, 660) {
		t.Error("contained interval should overlap")
	}
}

func TestOverlaps_Symmetric(t *testing.T) {
	intervals := [][4]int{
		{540, 600, 570, 630},
		{540, 600, 600, 660},
		{0, 1440, 720, 780},
	}
	for _, iv := range intervals {
		if Overlaps(iv[0], iv[1], iv[2], iv[3]) != Overlaps(iv[2], iv[3], iv[0], iv[1]) {
			t.Errorf("Overlaps not symmetric for %v", iv)
		}
	}
}

func TestFormatClockTime_RoundTrips(t *testing.T) {
	for _, s := range []string{"9:00 AM", "12:00 PM", "1:00 PM", "6:00 PM", "12:30 AM"} {
		if got := FormatClockTime(ParseClockTime(s)); got != s {
			t.Errorf("FormatClockTime(ParseClockTime(%q)) = %q", s, got)
		}
	}
}

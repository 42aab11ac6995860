package header_test

import (
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/httphdr/header"
)

func TestFormatDate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   time.Time
		want string
	}{
		{"utc", time.Date(1994, 11, 15, 8, 12, 31, 0, time.UTC), "Tue, 15 Nov 1994 08:12:31 GMT"},
		{"offset", time.Date(2010, 11, 14, 2, 29, 0, 0, time.FixedZone("MSK", 3*60*60)), "Sat, 13 Nov 2010 23:29:00 GMT"},
		{"zero", time.Time{}, "Mon, 01 Jan 0001 00:00:00 GMT"},
	}
	for _, c := range cases {
		if got := header.FormatDate(c.in); got != c.want {
			t.Errorf("FormatDate(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	want := time.Date(1994, 11, 6, 8, 49, 37, 0, time.UTC)

	cases := []struct {
		name    string
		in      string
		want    time.Time
		wantErr error
	}{
		{"rfc1123", "Sun, 06 Nov 1994 08:49:37 GMT", want, nil},
		{"rfc850", "Sunday, 06-Nov-94 08:49:37 GMT", want, nil},
		{"asctime", "Sun Nov  6 08:49:37 1994", want, nil},
		{"empty", "", time.Time{}, header.ErrDateParse},
		{"garbage", "yesterday", time.Time{}, header.ErrDateParse},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := header.ParseDate(c.in)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("ParseDate(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.in, err, c.wantErr, diff)
			}
			if !got.Equal(c.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestDate_ConcurrentUse(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC)

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			in := base.Add(time.Duration(i) * time.Hour)
			for range 100 {
				got, err := header.ParseDate(header.FormatDate(in))
				if err != nil {
					t.Errorf("ParseDate() error = %v, want nil", err)
					return
				}
				if !got.Equal(in) {
					t.Errorf("round trip = %v, want %v", got, in)
					return
				}
			}
		}()
	}
	wg.Wait()
}

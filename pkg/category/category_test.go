package category

import "testing"

func TestAllOrder(t *testing.T) {
	want := []Category{Political, Economic, Social, Technological, Legal, Environmental}
	got := All()
	if len(got) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Category
		wantErr bool
	}{
		{in: "political", want: Political},
		{in: "Economic", want: Economic},
		{in: "  SOCIAL  ", want: Social},
		{in: "tech", want: Technological},
		{in: "t", want: Technological},
		{in: "leg", want: Legal},
		{in: "env", want: Environmental},
		{in: "e", want: Economic},
		{in: "", wantErr: true},
		{in: "fiscal", wantErr: true},
	}
	for _, tc := range tests {
		got, err := Parse(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("Parse(%q): expected error, got %s", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q): expected %s, got %s", tc.in, tc.want, got)
		}
	}
}

func TestValid(t *testing.T) {
	for _, c := range All() {
		if !c.Valid() {
			t.Errorf("%s should be valid", c)
		}
	}
	if Category("Fiscal").Valid() {
		t.Error("Fiscal should not be valid")
	}
}

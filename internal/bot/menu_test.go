package bot

import "testing"

func TestMenuMarkup(t *testing.T) {
	markup := menuMarkup()
	rows := markup.InlineKeyboard
	if len(rows) != 3 {
		t.Fatalf("menu rows = %d, want 3", len(rows))
	}

	want := []struct {
		text   string
		unique string
	}{
		{"Расписание на сегодня", cbToday},
		{"Расписание на завтра", cbTomorrow},
		{"Расписание на неделю", cbWeek},
	}
	for i, w := range want {
		if len(rows[i]) != 1 {
			t.Fatalf("row %d has %d buttons, want 1", i, len(rows[i]))
		}
		btn := rows[i][0]
		if btn.Text != w.text {
			t.Errorf("row %d text = %q, want %q", i, btn.Text, w.text)
		}
		if btn.Unique != w.unique {
			t.Errorf("row %d unique = %q, want %q", i, btn.Unique, w.unique)
		}
	}
}

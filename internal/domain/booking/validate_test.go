package booking

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

var testToday = time.Date(2026, time.October, 14, 18, 45, 0, 0, time.FixedZone("EDT", -4*3600))

func validRaw() Raw {
	return Raw{
		"name":      "John Doe",
		"email":     "a@b.com",
		"phone":     "+16135551234",
		"date":      "2099-01-01",
		"time":      "12:00",
		"partySize": float64(2),
	}
}

func with(overrides Raw) Raw {
	raw := validRaw()
	for k, v := range overrides {
		if v == nil {
			delete(raw, k)
			continue
		}
		raw[k] = v
	}
	return raw
}

func TestValidate_AcceptsValidRequest(t *testing.T) {
	raw := with(Raw{"occasion": "Birthday", "notes": "Window seat please"})

	req, err := Validate(raw, testToday)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	want := Request{
		Name:      "John Doe",
		Email:     "a@b.com",
		Phone:     "+16135551234",
		Date:      "2099-01-01",
		Time:      "12:00",
		PartySize: 2,
		Occasion:  "Birthday",
		Notes:     "Window seat please",
	}
	if *req != want {
		t.Errorf("Validate() = %+v, want %+v", *req, want)
	}
}

func TestValidate_AcceptsToday(t *testing.T) {
	if _, err := Validate(with(Raw{"date": "2026-10-14"}), testToday); err != nil {
		t.Errorf("booking for today rejected: %v", err)
	}
}

func TestValidate_AcceptsBoundaryValues(t *testing.T) {
	tests := []struct {
		name string
		raw  Raw
	}{
		{"min party", with(Raw{"partySize": float64(1)})},
		{"max party", with(Raw{"partySize": float64(20)})},
		{"party as string", with(Raw{"partySize": "4"})},
		{"party as json number", with(Raw{"partySize": json.Number("6")})},
		{"three char name", with(Raw{"name": "Jao"})},
		{"max name", with(Raw{"name": "J" + strings.Repeat("o", MaxNameLength-1)})},
		{"max notes", with(Raw{"notes": strings.Repeat("n", MaxNotesLength)})},
		{"null occasion", with(Raw{"occasion": nil})},
		{"midnight format", with(Raw{"time": "00:00"})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Validate(tt.raw, testToday); err != nil {
				t.Errorf("Validate() error = %v", err)
			}
		})
	}
}

func TestValidate_RejectsWithFieldMessage(t *testing.T) {
	tests := []struct {
		name      string
		raw       Raw
		wantField string
		wantMsg   string
	}{
		{"missing name", with(Raw{"name": nil}), "name", MsgNameRequired},
		{"name not string", with(Raw{"name": float64(7)}), "name", MsgNameRequired},
		{"name too long", with(Raw{"name": "J" + strings.Repeat("o", MaxNameLength)}), "name", MsgNameTooLong},
		{"missing email", with(Raw{"email": nil}), "email", MsgEmailRequired},
		{"bad email", with(Raw{"email": "not-an-email"}), "email", MsgInvalidEmail},
		{"missing phone", with(Raw{"phone": nil}), "phone", MsgPhoneRequired},
		{"bad phone", with(Raw{"phone": "12345"}), "phone", MsgInvalidPhone},
		{"foreign phone", with(Raw{"phone": "+442079460958"}), "phone", MsgInvalidPhone},
		{"missing date", with(Raw{"date": nil}), "date", MsgDateRequired},
		{"bad date", with(Raw{"date": "01/02/2099"}), "date", MsgInvalidDate},
		{"impossible date", with(Raw{"date": "2099-02-30"}), "date", MsgInvalidDate},
		{"past date", with(Raw{"date": "2026-10-13"}), "date", MsgDateInPast},
		{"missing time", with(Raw{"time": nil}), "time", MsgTimeRequired},
		{"12h time", with(Raw{"time": "7:30 PM"}), "time", MsgInvalidTime},
		{"hour out of range", with(Raw{"time": "24:00"}), "time", MsgInvalidTime},
		{"no leading zero", with(Raw{"time": "9:30"}), "time", MsgInvalidTime},
		{"missing party", with(Raw{"partySize": nil}), "partySize", MsgPartySizeRequired},
		{"fractional party", with(Raw{"partySize": 2.5}), "partySize", MsgPartySizeNotInt},
		{"party not number", with(Raw{"partySize": "two"}), "partySize", MsgPartySizeNotInt},
		{"party zero", with(Raw{"partySize": float64(0)}), "partySize", MsgPartySizeTooSmall},
		{"party negative", with(Raw{"partySize": float64(-3)}), "partySize", MsgPartySizeTooSmall},
		{"party too large", with(Raw{"partySize": float64(21)}), "partySize", MsgPartySizeTooLarge},
		{"party huge", with(Raw{"partySize": 1e12}), "partySize", MsgPartySizeTooLarge},
		{"occasion not text", with(Raw{"occasion": float64(1)}), "occasion", MsgOccasionNotText},
		{"notes not text", with(Raw{"notes": true}), "notes", MsgNotesNotText},
		{"notes too long", with(Raw{"notes": strings.Repeat("n", MaxNotesLength+1)}), "notes", MsgNotesTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(tt.raw, testToday)
			ve, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("Validate() error = %v, want *ValidationError", err)
			}
			if ve.Field != tt.wantField || ve.Message != tt.wantMsg {
				t.Errorf("Validate() = (%s, %q), want (%s, %q)", ve.Field, ve.Message, tt.wantField, tt.wantMsg)
			}
		})
	}
}

func TestValidate_SuspiciousNamesIgnoreLength(t *testing.T) {
	names := []string{
		"admin",
		"Administrator",
		"TEST",
		"testing account",
		"12345",
		"7",
		"a",
		"Jo",
		"xY",
		"test" + strings.Repeat("x", MaxNameLength),
	}

	for _, name := range names {
		_, err := Validate(with(Raw{"name": name}), testToday)
		if err == nil || err.Error() != MsgInvalidNameFormat {
			t.Errorf("name %q: error = %v, want %q", name, err, MsgInvalidNameFormat)
		}
	}
}

func TestValidate_ShortCircuitsInDeclarationOrder(t *testing.T) {
	raw := Raw{
		"name":      "John Doe",
		"email":     "broken",
		"phone":     "nope",
		"date":      "yesterday",
		"time":      "25:99",
		"partySize": float64(99),
	}

	_, err := Validate(raw, testToday)
	if err == nil || err.Error() != MsgInvalidEmail {
		t.Fatalf("error = %v, want %q", err, MsgInvalidEmail)
	}

	raw["email"] = "a@b.com"
	_, err = Validate(raw, testToday)
	if err == nil || err.Error() != MsgInvalidPhone {
		t.Fatalf("error = %v, want %q", err, MsgInvalidPhone)
	}
}

func TestValidate_NilPayload(t *testing.T) {
	_, err := Validate(nil, testToday)
	if err == nil || err.Error() != MsgNameRequired {
		t.Errorf("error = %v, want %q", err, MsgNameRequired)
	}
}

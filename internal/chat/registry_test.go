package chat

import "testing"

func TestRegistryRejectsInvalidEndpoints(t *testing.T) {
	r := NewRegistry()

	cases := []Endpoint{
		{URI: "", Protocol: "matrix"},
		{URI: "https://relay.example.com", Protocol: ""},
		{URI: "not a url", Protocol: "matrix"},
		{URI: "/relative/path", Protocol: "matrix"},
	}

	for _, e := range cases {
		if r.Register(e) {
			t.Errorf("registered invalid endpoint %+v", e)
		}
	}
	if r.Len() != 0 {
		t.Errorf("registry len = %d after invalid registrations", r.Len())
	}
}

func TestRegistryKeepsInsertionOrder(t *testing.T) {
	r := NewRegistry()

	if !r.Register(Endpoint{URI: "https://a.example.com", Protocol: "matrix"}) {
		t.Fatal("first register failed")
	}
	if !r.Register(Endpoint{URI: "https://b.example.com", Protocol: "xmpp"}) {
		t.Fatal("second register failed")
	}

	first, ok := r.First()
	if !ok || first.URI != "https://a.example.com" {
		t.Errorf("First = %+v", first)
	}

	list := r.List()
	if len(list) != 2 || list[0].URI != "https://a.example.com" || list[1].URI != "https://b.example.com" {
		t.Errorf("List = %+v", list)
	}
}

func TestRegistryReRegisterUpdatesInPlace(t *testing.T) {
	r := NewRegistry()

	r.Register(Endpoint{URI: "https://a.example.com", Protocol: "matrix"})
	r.Register(Endpoint{URI: "https://a.example.com", Protocol: "xmpp", APIKey: "k"})

	if r.Len() != 1 {
		t.Fatalf("len = %d, want 1", r.Len())
	}
	first, _ := r.First()
	if first.Protocol != "xmpp" || first.APIKey != "k" {
		t.Errorf("re-register did not update: %+v", first)
	}
}

func TestLooksLikeRegistrationRequest(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"connect me to a matrix server", true},
		{"can you connect to this protocol endpoint", true},
		{"Connect my MCP please", true},
		{"how much does a kitchen remodel cost", false},
		{"tell me about servers", false},
		{"connect the dots", false},
	}

	for _, tc := range cases {
		if got := looksLikeRegistrationRequest(tc.text); got != tc.want {
			t.Errorf("looksLikeRegistrationRequest(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

package profile

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Profile is one candidate business partner.
//
// Name, Role, Location and Posts are scored; Photo and Contact are only shown.
type Profile struct {
	Name     string `json:"name" yaml:"name"`
	Role     string `json:"role" yaml:"role"`
	Location string `json:"location" yaml:"location"`
	Posts    string `json:"posts" yaml:"posts"`
	Photo    string `json:"photo,omitempty" yaml:"photo,omitempty"`
	Contact  string `json:"contact,omitempty" yaml:"contact,omitempty"`
}

// Fields returns the scorable fields in fixed order: name, role, location, posts.
func (p Profile) Fields() [4]string {
	return [4]string{p.Name, p.Role, p.Location, p.Posts}
}

// rawProfile accepts both the English keys and the Dutch keys found in older
// Data.json files. A nil pointer means the key was absent or null.
type rawProfile struct {
	Name     *string `json:"name" yaml:"name"`
	Naam     *string `json:"naam" yaml:"naam"`
	Role     *string `json:"role" yaml:"role"`
	Functie  *string `json:"functie" yaml:"functie"`
	Location *string `json:"location" yaml:"location"`
	Locatie  *string `json:"locatie" yaml:"locatie"`
	Posts    *string `json:"posts" yaml:"posts"`
	Photo    *string `json:"photo" yaml:"photo"`
	Foto     *string `json:"foto" yaml:"foto"`
	Contact  *string `json:"contact" yaml:"contact"`
}

func (r rawProfile) toProfile() Profile {
	return Profile{
		Name:     firstSet(r.Name, r.Naam),
		Role:     firstSet(r.Role, r.Functie),
		Location: firstSet(r.Location, r.Locatie),
		Posts:    firstSet(r.Posts),
		Photo:    firstSet(r.Photo, r.Foto),
		Contact:  firstSet(r.Contact),
	}
}

func firstSet(vals ...*string) string {
	for _, v := range vals {
		if v != nil {
			return *v
		}
	}
	return ""
}

// UnmarshalJSON decodes a profile, tolerating missing or null fields.
func (p *Profile) UnmarshalJSON(b []byte) error {
	var r rawProfile
	if err := json.Unmarshal(b, &r); err != nil {
		return err
	}
	*p = r.toProfile()
	return nil
}

// UnmarshalYAML decodes a profile, tolerating missing or null fields.
func (p *Profile) UnmarshalYAML(value *yaml.Node) error {
	var r rawProfile
	if err := value.Decode(&r); err != nil {
		return err
	}
	*p = r.toProfile()
	return nil
}

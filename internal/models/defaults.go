package models

var defaultProfile = Profile{
	Name:  "Arturas Aleksandraus",
	Title: "Arty Facts",
	Avatar: Image{
		Src: "https://avatars.githubusercontent.com/u/8863817?v=4",
		Alt: "Arturas Aleksandraus",
	},
	Links: []ProfileLink{
		{
			Label:     "GitHub",
			TargetURL: "https://github.com/Arty-Facts",
			IconURL:   "https://cdn-icons-png.flaticon.com/512/25/25231.png",
			AltText:   "Arturas Aleksandraus",
		},
		{
			Label:     "LinkedIn",
			TargetURL: "https://www.linkedin.com/in/arturas-aleksandraus-7ab4a1192/",
			IconURL:   "https://www.maryville.edu/wp-content/uploads/2015/11/Linkedin-logo-1-550x550-300x300.png",
			AltText:   "Arturas Aleksandraus",
		},
		{
			Label:     "Email",
			TargetURL: "mailto:Arturas.Aleksandraus@ContextVision.se",
			IconURL:   "https://www.transparentpng.com/thumb/email-logo/blue-arrow-and-open-email-logo-hd-png-yfOWBP.png",
			AltText:   "Arturas.Aleksandraus@ContextVision.se",
		},
	},
}

// DefaultProfile returns a fresh copy of the built-in profile.
func DefaultProfile() Profile {
	return defaultProfile.Clone()
}

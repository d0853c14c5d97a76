package config

// Builtin icon tables. The glyphs are Font Awesome codepoints; a
// patched font (or Font Awesome itself) must be active in the bar for
// them to render. User config entries merge over these per key.
//
// To find the WM_CLASS for an application, run `xprop | grep WM_CLASS`
// and click its window.

func builtinClassIcons() map[string]string {
	return map[string]string{
		"alacritty":             "", // terminal
		"atom":                  "", // code
		"banshee":               "", // play
		"blender":               "", // cube
		"chromium":              "", // chrome
		"cura":                  "",
		"darktable":             "", // image
		"discord":               "", // comment
		"eclipse":               "",
		"emacs":                 "",
		"eog":                   "",
		"evince":                "", // file-pdf
		"evolution":             "", // envelope
		"feh":                   "",
		"file-roller":           "", // compress
		"filezilla":             "", // server
		"firefox":               "", // firefox
		"firefox-esr":           "",
		"gimp-2.8":              "",
		"gnome-control-center":  "", // toggle-on
		"gnome-terminal-server": "",
		"google-chrome":         "",
		"gpick":                 "", // eye-dropper
		"imv":                   "",
		"java":                  "",
		"jetbrains-idea":        "",
		"jetbrains-studio":      "",
		"keepassxc":             "", // key
		"keybase":               "",
		"kicad":                 "", // microchip
		"kitty":                 "",
		"libreoffice":           "", // file-alt
		"lua5.1":                "", // moon
		"lutris":                "", // steam
		"mpv":                   "", // tv
		"mupdf":                 "",
		"mysql-workbench-bin":   "", // database
		"nautilus":              "", // copy
		"nemo":                  "",
		"openscad":              "",
		"pavucontrol":           "", // volume-up
		"postman":               "", // space-shuttle
		"rhythmbox":             "",
		"robo3t":                "",
		"slack":                 "", // slack
		"slic3r.pl":             "",
		"spotify":               "", // spotify
		"steam":                 "",
		"subl":                  "",
		"subl3":                 "",
		"sublime_text":          "",
		"telegram-desktop":      "",
		"termite":               "",
		"thunar":                "",
		"thunderbird":           "",
		"totem":                 "",
		"urxvt":                 "",
		"xfce4-terminal":        "",
		"xournal":               "",
		"yelp":                  "",
		"zenity":                "", // window-maximize
		"zoom":                  "",
	}
}

func builtinNameIcons() map[string]string {
	return map[string]string{
		"atop":    "", // server
		"bash":    "", // terminal
		"emacs":   "", // file-code
		"glances": "",
		"gotop":   "",
		"htop":    "",
		"mutt":    "", // envelope-square
		"neomutt": "",
		"nano":    "",
		"nnn":     "", // folder-open
		"nvim":    "",
		"ranger":  "",
		"ssh":     "",
		"sudo":    "", // user-shield
		"top":     "",
		"vi":      "",
		"vifm":    "",
		"vim":     "",
		"zsh":     "",
	}
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		DefaultIcon:    "*",
		IconListFormat: "default",
		Icons: IconTables{
			ByClass: builtinClassIcons(),
			ByName:  builtinNameIcons(),
		},
	}
}

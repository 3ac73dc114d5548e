package link

import (
	"fmt"
)

// wireLink is the flat kind-discriminated shape the persistence layer
// exchanges. Only fields meaningful for the kind are ever populated.
type wireLink struct {
	Kind string `yaml:"kind"`

	URL       string `yaml:"url,omitempty"`
	PageSlug  string `yaml:"page_slug,omitempty"`
	PageID    string `yaml:"page_id,omitempty"`
	PageTitle string `yaml:"page_title,omitempty"`

	NewTab   bool  `yaml:"new_tab,omitempty"`
	NoFollow *bool `yaml:"no_follow,omitempty"`

	AnchorID       string `yaml:"anchor_id,omitempty"`
	SmoothScroll   *bool  `yaml:"smooth_scroll,omitempty"`
	ScrollOffsetPx *int   `yaml:"scroll_offset_px,omitempty"`

	Email   string `yaml:"email,omitempty"`
	Subject string `yaml:"subject,omitempty"`
	Body    string `yaml:"body,omitempty"`

	Phone string `yaml:"phone,omitempty"`

	DownloadURL      string `yaml:"download_url,omitempty"`
	DownloadFilename string `yaml:"download_filename,omitempty"`

	ModalID string `yaml:"modal_id,omitempty"`
	Action  string `yaml:"action,omitempty"`

	PlatformID string `yaml:"platform_id,omitempty"`
	Profile    string `yaml:"profile,omitempty"`

	ScriptBody string `yaml:"script,omitempty"`

	TrackClick  bool   `yaml:"track_click,omitempty"`
	TrackLabel  string `yaml:"track_label,omitempty"`
	CursorStyle string `yaml:"cursor_style,omitempty"`
	HoverEffect string `yaml:"hover_effect,omitempty"`
}

func (l Link) MarshalYAML() (any, error) {
	w := wireLink{
		Kind:        l.Kind.String(),
		TrackClick:  l.TrackClick,
		TrackLabel:  l.TrackLabel,
		CursorStyle: l.CursorStyle,
		HoverEffect: l.HoverEffect,
	}
	switch l.Kind {
	case KindInternal:
		if l.Internal != nil {
			w.URL, w.PageSlug, w.PageID, w.PageTitle = l.Internal.URL, l.Internal.PageSlug, l.Internal.PageID, l.Internal.PageTitle
		}
	case KindExternal:
		if l.External != nil {
			w.URL, w.NewTab, w.NoFollow = l.External.URL, l.External.NewTab, l.External.NoFollow
		}
	case KindAnchor:
		if l.Anchor != nil {
			w.AnchorID = l.Anchor.AnchorID
		}
	case KindScroll:
		if l.Scroll != nil {
			w.AnchorID = l.Scroll.AnchorID
			smooth := l.Scroll.SmoothScroll
			w.SmoothScroll = &smooth
			if l.Scroll.OffsetSet {
				offset := l.Scroll.OffsetPx
				w.ScrollOffsetPx = &offset
			}
		}
	case KindEmail:
		if l.Email != nil {
			w.Email, w.Subject, w.Body = l.Email.Address, l.Email.Subject, l.Email.Body
		}
	case KindPhone:
		if l.Phone != nil {
			w.Phone = l.Phone.Number
		}
	case KindSMS:
		if l.SMS != nil {
			w.Phone, w.Body = l.SMS.Number, l.SMS.Body
		}
	case KindDownload:
		if l.Download != nil {
			w.DownloadURL, w.DownloadFilename = l.Download.URL, l.Download.Filename
		}
	case KindModal:
		if l.Modal != nil {
			w.ModalID, w.Action = l.Modal.ModalID, l.Modal.Action.String()
		}
	case KindSocial:
		if l.Social != nil {
			w.PlatformID, w.Profile = l.Social.PlatformID, l.Social.Profile
		}
	case KindScript:
		if l.Script != nil {
			w.ScriptBody = l.Script.Body
		}
	}
	return w, nil
}

func (l *Link) UnmarshalYAML(unmarshal func(any) error) error {
	var w wireLink
	if err := unmarshal(&w); err != nil {
		return err
	}
	parsed, err := fromWire(&w)
	if err != nil {
		return err
	}
	*l = *parsed
	return nil
}

func fromWire(w *wireLink) (*Link, error) {
	kind, err := ParseKind(w.Kind)
	if err != nil {
		return nil, fmt.Errorf("unable to decode link: %w", err)
	}
	l := &Link{
		Kind:        kind,
		TrackClick:  w.TrackClick,
		TrackLabel:  w.TrackLabel,
		CursorStyle: w.CursorStyle,
		HoverEffect: w.HoverEffect,
	}
	switch kind {
	case KindInternal:
		l.Internal = &Internal{URL: w.URL, PageSlug: w.PageSlug, PageID: w.PageID, PageTitle: w.PageTitle}
	case KindExternal:
		l.External = &External{URL: w.URL, NewTab: w.NewTab, NoFollow: w.NoFollow}
	case KindAnchor:
		l.Anchor = &Anchor{AnchorID: w.AnchorID}
	case KindScroll:
		s := &Scroll{AnchorID: w.AnchorID, SmoothScroll: true, OffsetPx: DefaultScrollOffsetPx}
		if w.SmoothScroll != nil {
			s.SmoothScroll = *w.SmoothScroll
		}
		if w.ScrollOffsetPx != nil {
			s.OffsetPx = *w.ScrollOffsetPx
			s.OffsetSet = true
		}
		l.Scroll = s
	case KindEmail:
		l.Email = &Email{Address: w.Email, Subject: w.Subject, Body: w.Body}
	case KindPhone:
		l.Phone = &Phone{Number: w.Phone}
	case KindSMS:
		l.SMS = &SMS{Number: w.Phone, Body: w.Body}
	case KindDownload:
		l.Download = &Download{URL: w.DownloadURL, Filename: w.DownloadFilename}
	case KindModal:
		action, err := ParseModalAction(w.Action)
		if err != nil {
			return nil, fmt.Errorf("unable to decode link: %w", err)
		}
		l.Modal = &Modal{ModalID: w.ModalID, Action: action}
	case KindSocial:
		l.Social = &Social{PlatformID: w.PlatformID, Profile: w.Profile}
	case KindScript:
		l.Script = &Script{Body: w.ScriptBody}
	}
	return l, nil
}

package browser

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-rod/rod"
	"go.uber.org/zap"

	"webaudit/internal/config"
	"webaudit/internal/domain"
)

// snapshotJS condenses the rendered page into one JSON payload. The caps
// argument bounds the sampled collections so the payload stays small on
// large pages. Selector heuristics cover the common site markup patterns
// (logo classes, nav landmarks, hamburger toggles).
const snapshotJS = `(caps) => {
	const box = (el) => {
		const r = el.getBoundingClientRect();
		return { x: r.x, y: r.y, width: r.width, height: r.height };
	};
	const taggedBox = (el) => Object.assign({ tag: el.tagName.toLowerCase() }, box(el));
	const take = (list, n) => Array.prototype.slice.call(list, 0, n);
	const all = (sel) => Array.prototype.slice.call(document.querySelectorAll(sel));
	const style = (el, prop) => window.getComputedStyle(el).getPropertyValue(prop);

	const out = {
		url: location.href,
		title: document.title,
		inner_width: window.innerWidth,
		scroll_width: (document.body && document.body.scrollWidth) || document.documentElement.scrollWidth || 0,
		has_hamburger: !!document.querySelector('.hamburger, .menu-toggle, .navbar-toggler, button[aria-expanded]')
	};

	const navEntry = performance.getEntriesByType('navigation')[0];
	if (navEntry) {
		out.load_event_ms = navEntry.duration;
	} else if (performance.timing && performance.timing.loadEventEnd > 0) {
		out.load_event_ms = performance.timing.loadEventEnd - performance.timing.navigationStart;
	}

	const header = document.querySelector('header');
	if (header) {
		out.header_box = box(header);
		out.header_children = Array.prototype.map.call(header.children, taggedBox);
	}
	let logo = document.querySelector('.logo, .site-logo, .navbar-brand, .brand');
	if (!logo && header) logo = header.querySelector('img');
	if (logo) out.logo_box = box(logo);
	const mainNav = document.querySelector('nav, .nav, .navbar, #main-nav');
	if (mainNav) out.nav_box = box(mainNav);
	out.nav_boxes = take(document.querySelectorAll('nav'), 2).map(box);

	const main = document.querySelector('main') || document.body;
	out.section_boxes = take(main.children, caps.sections).map(box);
	out.footer_child_widths = take(document.querySelectorAll('footer *'), 12)
		.map((el) => el.getBoundingClientRect().width);

	out.button_colors = take(document.querySelectorAll('button, a.button, a.btn, .btn'), caps.buttons)
		.map((el) => style(el, 'background-color') || style(el, 'color'));
	out.link_colors = take(document.querySelectorAll('a'), caps.linkColors)
		.map((el) => style(el, 'color'));

	out.text_samples = take(document.querySelectorAll('p'), caps.paragraphs).map((el) => {
		let bg = '';
		let cur = el;
		while (cur && cur.nodeName.toLowerCase() !== 'html') {
			const b = style(cur, 'background-color');
			if (b && b !== 'rgba(0, 0, 0, 0)' && b !== 'transparent') { bg = b; break; }
			cur = cur.parentElement;
		}
		if (!bg) bg = style(document.body, 'background-color') || 'rgb(255,255,255)';
		return { color: style(el, 'color'), background: bg };
	});

	const fontPx = (el) => parseFloat(style(el, 'font-size')) || 0;
	out.h1_sizes = all('h1').map(fontPx);
	out.h2_sizes = all('h2').map(fontPx);
	out.paragraph_font_sizes = take(document.querySelectorAll('p'), caps.paragraphs).map(fontPx);

	out.headings = take(document.querySelectorAll('h1, h2, h3'), caps.headings)
		.map((el) => (el.innerText || '').trim());

	out.placeholder_hits = [];
	const walker = document.createTreeWalker(document.body, NodeFilter.SHOW_TEXT);
	let node;
	while (out.placeholder_hits.length < 10 && (node = walker.nextNode())) {
		const text = (node.textContent || '').trim();
		if (text && text.indexOf('INSERT') !== -1) {
			out.placeholder_hits.push(text.slice(0, 120));
		}
	}

	out.links = all('a').map((el) => ({
		href: el.href || '',
		text: (el.innerText || '').trim().slice(0, 80),
		class: (typeof el.className === 'string' ? el.className : '').slice(0, 120),
		rel: el.rel || ''
	}));

	out.images = all('img').map((el) => ({
		src: el.src || '',
		natural_width: el.naturalWidth || 0,
		display_width: el.getBoundingClientRect().width
	}));

	out.overflow_widths = [];
	const everything = document.querySelectorAll('body, body *');
	for (let i = 0; i < everything.length; i++) {
		const w = everything[i].getBoundingClientRect().width;
		if (w > window.innerWidth + caps.slack) out.overflow_widths.push(w);
	}

	out.element_boxes = take(document.querySelectorAll('button, a, .card, .article, p'), caps.elements)
		.map(taggedBox);

	try {
		out.long_tasks = performance.getEntriesByType('longtask').map((e) => e.duration);
	} catch (e) {
		out.long_tasks = null;
	}

	return out;
}`

// Capture evaluates the snapshot script against the current page. The
// caller is expected to have set the viewport and navigated already.
func (s *Session) Capture(ctx context.Context, vp domain.Viewport) (*domain.Snapshot, error) {
	res, err := s.page.Context(ctx).Evaluate(&rod.EvalOptions{
		JS: snapshotJS,
		JSArgs: []interface{}{map[string]interface{}{
			"sections":   config.SectionSampleLimit,
			"buttons":    config.ButtonSampleLimit,
			"linkColors": config.LinkColorSampleLimit,
			"paragraphs": config.ParagraphSampleLimit,
			"headings":   config.HeadingScanLimit,
			"elements":   config.ElementScanLimit,
			"slack":      config.WidthSlackPx,
		}},
		ByValue:      true,
		AwaitPromise: true,
	})
	if err != nil {
		return nil, fmt.Errorf("capture %s snapshot: %w", vp.Label, err)
	}
	raw, err := res.Value.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("marshal %s snapshot: %w", vp.Label, err)
	}
	snap, err := decodeSnapshot(raw, vp)
	if err != nil {
		return nil, fmt.Errorf("decode %s snapshot: %w", vp.Label, err)
	}
	s.log.Debug("snapshot captured",
		zap.String("viewport", vp.Label),
		zap.Int("links", len(snap.Links)),
		zap.Int("images", len(snap.Images)),
		zap.Float64("load_ms", snap.LoadEventMs))
	return snap, nil
}

// decodeSnapshot maps the evaluated payload onto the domain type
func decodeSnapshot(raw []byte, vp domain.Viewport) (*domain.Snapshot, error) {
	var snap domain.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, err
	}
	snap.Viewport = vp
	return &snap, nil
}

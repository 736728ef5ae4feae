package screens

import (
	"image"
	"unicode/utf8"

	"github.com/clawdbotatg/ogcard/internal/render"
	"github.com/clawdbotatg/ogcard/internal/render/layout"
)

// Palette colors the PFP tile grid in row-major order.
var Palette = []string{
	"#FF6B6B", "#4ECDC4", "#45B7D1", "#96CEB4", "#FFEAA7",
	"#DDA0DD", "#FF7F50", "#87CEEB", "#98D8C8", "#F7DC6F",
	"#BB8FCE", "#85C1E9", "#F1948A", "#82E0AA", "#F8C471",
	"#D2B4DE", "#AED6F1", "#F5B7B1", "#A9DFBF", "#FAD7A0",
	"#E8DAEF", "#D5F5E3", "#FADBD8", "#D6EAF8", "#FCF3CF",
}

// TileGrid places the palette tiles on the right half of the card.
var TileGrid = layout.Grid{Origin: image.Pt(720, 80), Columns: 5, CellPx: 80, GapPx: 6}

const tileRadius = 8

// Card text.
const (
	Emoji    = "🦞"
	Title    = "Clawd PFP"
	Subtitle = "NFT Collection on Base"
	SiteHost = "pfp.clawdbotatg.eth.limo"
)

var Features = []string{
	"💰 Mint with ETH (0.001 per NFT)",
	"🔥 Burns CLAWD on every mint",
	"🎨 1,000 unique PFP NFTs",
	"💎 Fund dev without selling tokens",
}

const (
	textLeft        = 60
	featuresTop     = 310
	featureLineStep = 38
	qrSizePx        = 92
	qrMarginPx      = 17
)

var (
	accentColor   = render.MustHex("#FF6B6B")
	titleColor    = render.MustHex("#FFFFFF")
	subtitleColor = render.MustHex("#94a3b8")
	featureColor  = render.MustHex("#e2e8f0")
	urlColor      = render.MustHex("#60a5fa")

	// AccentBar underlines the title, (60,150) through (350,154) inclusive.
	AccentBar = layout.Inclusive(60, 150, 350, 154)
)

// OGCardScreen draws the Clawd PFP Open Graph preview.
type OGCardScreen struct {
	// QRCode, when set, is drawn under the tile grid.
	QRCode image.Image
}

var _ render.Screen = OGCardScreen{}

func (screen OGCardScreen) Draw(d render.Drawer) {
	d.FillBackground()
	drawTiles(d)

	// Text stays left of the tile grid.
	w, h := d.Size()
	column, _ := layout.SplitVertical(image.Rect(0, 0, w, h), TileGrid.Origin.X)
	maxWidth := column.Max.X - textLeft
	drawText := func(text string, y int, style render.TextStyle) {
		d.DrawText(fitText(d, text, maxWidth, style), textLeft, y, style)
	}

	drawText(Emoji, 80, render.TextStyle{Color: accentColor, Role: render.FontTitle})
	drawText(Title, 160, render.TextStyle{Color: titleColor, Role: render.FontTitle})
	drawText(Subtitle, 240, render.TextStyle{Color: subtitleColor, Role: render.FontSubtitle})
	for i, feature := range Features {
		drawText(feature, featuresTop+i*featureLineStep, render.TextStyle{Color: featureColor, Role: render.FontSmall})
	}
	drawText(SiteHost, 530, render.TextStyle{Color: urlColor, Role: render.FontURL})

	d.FillRect(AccentBar, accentColor)

	if screen.QRCode != nil {
		d.DrawImageInRect(screen.QRCode, QRCodeRect())
	}
}

func drawTiles(d render.Drawer) {
	for i, cell := range TileGrid.Cells(len(Palette)) {
		d.FillRoundedRect(cell, tileRadius, render.MustHex(Palette[i]))
	}
}

// fitText drops trailing runes until text is at most maxWidth pixels wide.
func fitText(d render.Drawer, text string, maxWidth int, style render.TextStyle) string {
	for text != "" && d.MeasureText(text, style).Width > maxWidth {
		_, size := utf8.DecodeLastRuneInString(text)
		text = text[:len(text)-size]
	}
	return text
}

// QRCodeRect is where the optional site QR code is placed.
func QRCodeRect() image.Rectangle {
	return layout.Below(TileGrid.Bounds(len(Palette)), qrMarginPx, qrSizePx, qrSizePx)
}

// SiteQRCode encodes the site URL in the card's colors.
func SiteQRCode() (image.Image, error) {
	return render.GenerateQRCodeImage("https://"+SiteHost, qrSizePx, render.QRStyle{
		Foreground: render.Background,
		Background: featureColor,
	})
}

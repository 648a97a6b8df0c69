package http

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/jhoicas/museum-portal/internal/domain/entity"
)

// buildNewsFeed arma el documento RSS 2.0 de noticias publicadas. El canal
// apunta a la portada de noticias; cada item enlaza al detalle por id.
func buildNewsFeed(siteURL string, items []*entity.News) (string, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	rss := doc.CreateElement("rss")
	rss.CreateAttr("version", "2.0")

	channel := rss.CreateElement("channel")
	channel.CreateElement("title").SetText("Noticias del museo")
	channel.CreateElement("link").SetText(siteURL + "/news")
	channel.CreateElement("description").SetText("Novedades y notas de prensa")
	channel.CreateElement("language").SetText("en")

	for _, n := range items {
		item := channel.CreateElement("item")
		item.CreateElement("title").SetText(n.Title)
		item.CreateElement("link").SetText(fmt.Sprintf("%s/news/%s", siteURL, n.ID.Hex()))
		item.CreateElement("guid").SetText(n.ID.Hex())
		item.CreateElement("description").SetText(n.Excerpt)
		// RFC 1123 con zona numérica, el formato que esperan los lectores RSS.
		item.CreateElement("pubDate").SetText(n.PublishDate.Format("Mon, 02 Jan 2006 15:04:05 -0700"))
	}

	doc.Indent(2)
	return doc.WriteToString()
}

package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testFullXML = `<?xml version="1.0" encoding="UTF-8"?>
<ECFR>
<DIV1 N="27" TYPE="TITLE">
  <HEAD>Title 27 - Alcohol, Tobacco Products and Firearms</HEAD>
  <DIV3 N="I" TYPE="CHAPTER">
    <HEAD>CHAPTER I - ALCOHOL AND TOBACCO TAX AND TRADE BUREAU</HEAD>
    <DIV5 N="5" TYPE="PART">
      <HEAD>PART 5 - LABELING OF DISTILLED SPIRITS</HEAD>
      <SECAUTH>Authority: 26 U.S.C. 5301, 7805.</SECAUTH>
      <DIV6 N="E" TYPE="SUBPART">
        <HEAD>Subpart E - Standards of Identity</HEAD>
        <DIV8 N="5.63" TYPE="SECTION">
          <HEAD>§ 5.63 Mandatory label information.</HEAD>
          <P>The following information must appear on the label:</P>
          <P>(a) Brand name; and</P>
          <P>(b) Alcohol content.</P>
          <CITA>[T.D. TTB-158, 85 FR 18722, Apr. 2, 2020]</CITA>
        </DIV8>
      </DIV6>
    </DIV5>
  </DIV3>
</DIV1>
</ECFR>`

func TestExtractDivTexts(t *testing.T) {
	t.Parallel()

	divs, err := ExtractDivTexts([]byte(testFullXML))
	require.NoError(t, err)
	require.Len(t, divs, 5)

	// Document order, pre-order.
	assert.Equal(t, "DIV1", divs[0].Tag)
	assert.Equal(t, 1, divs[0].Depth)
	assert.Equal(t, TypeTitle, divs[0].Type)
	assert.Equal(t, "27", divs[0].Identifier)
	assert.Equal(t, "Title 27 - Alcohol, Tobacco Products and Firearms", divs[0].Heading)

	part := divs[2]
	assert.Equal(t, "part", part.Type)
	assert.Equal(t, "5", part.Identifier)
	assert.Equal(t, "Authority: 26 U.S.C. 5301, 7805.", part.Authority)

	section := divs[4]
	assert.Equal(t, TypeSection, section.Type)
	assert.Equal(t, "5.63", section.Identifier)
	assert.Equal(t, "§ 5.63 Mandatory label information.", section.Heading)
	assert.Equal(t, "[T.D. TTB-158, 85 FR 18722, Apr. 2, 2020]", section.Citation)
	assert.Equal(t,
		"The following information must appear on the label: (a) Brand name; and (b) Alcohol content.",
		section.Body)
}

func TestExtractDivTextsBodyExcludesNestedDivs(t *testing.T) {
	t.Parallel()

	divs, err := ExtractDivTexts([]byte(testFullXML))
	require.NoError(t, err)

	// The chapter body must not repeat its part and section text.
	chapter := divs[1]
	assert.Equal(t, "chapter", chapter.Type)
	assert.NotContains(t, chapter.Body, "Brand name")
	assert.NotContains(t, chapter.Body, "Standards of Identity")
}

func TestExtractDivTextsTypeMapping(t *testing.T) {
	t.Parallel()

	xml := `<DIV4 N="A" TYPE="SUBCHAP"></DIV4><DIV7 N="ECFR1" TYPE="SUBJGRP"></DIV7>`
	divs, err := ExtractDivTexts([]byte(xml))
	require.NoError(t, err)
	require.Len(t, divs, 2)
	assert.Equal(t, TypeSubchapter, divs[0].Type)
	assert.Equal(t, TypeSubjectGroup, divs[1].Type)
}

func TestTextIndexAmbiguousIdentifiers(t *testing.T) {
	t.Parallel()

	divs := []*DivText{
		{Type: TypeSubpart, Identifier: "A", Body: "first subpart A"},
		{Type: TypeSubpart, Identifier: "A", Body: "second subpart A"},
		{Type: TypeSection, Identifier: "5.63", Body: "section text"},
		{Type: TypeSection, Identifier: ""},
	}
	idx := NewTextIndex(divs)

	_, ok := idx.Lookup(TypeSubpart, "A")
	assert.False(t, ok, "repeated identifiers are ambiguous")

	d, ok := idx.Lookup(TypeSection, "5.63")
	require.True(t, ok)
	assert.Equal(t, "section text", d.Body)

	_, ok = idx.Lookup(TypeSection, "9.99")
	assert.False(t, ok)
}

func TestApplyText(t *testing.T) {
	t.Parallel()

	records := []Record{
		{Type: TypeTitle, TitleID: "27"},
		{Type: TypeSection, TitleID: "27", SectionID: "5.63"},
		{Type: TypeSection, TitleID: "27", SectionID: "5.64"},
	}
	idx := NewTextIndex([]*DivText{
		{Type: TypeSection, Identifier: "5.63", Body: "section text"},
		{Type: TypeSection, Identifier: "5.64", Body: ""},
	})

	applied := ApplyText(records, idx)
	assert.Equal(t, 1, applied)
	assert.Equal(t, "section text", records[1].RegText)
	assert.Equal(t, "", records[2].RegText)
	assert.Equal(t, "", records[0].RegText)
}

func TestExtractDivTextsHTMLEntities(t *testing.T) {
	t.Parallel()

	xml := `<DIV8 N="5.1" TYPE="SECTION"><HEAD>&sect; 5.1 Scope.</HEAD><P>Beer &amp; wine.</P></DIV8>`
	divs, err := ExtractDivTexts([]byte(xml))
	require.NoError(t, err)
	require.Len(t, divs, 1)
	assert.Equal(t, "§ 5.1 Scope.", divs[0].Heading)
	assert.Equal(t, "Beer & wine.", divs[0].Body)
}

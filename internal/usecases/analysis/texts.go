package analysis

import (
	"strings"

	"github.com/pppaal/saju-astro-chat-sub011/internal/domain"
)

// Banner separates sections visually inside the LLM prompt. It carries no
// parsing meaning downstream.
var Banner = strings.Repeat("═", 40)

// Single source of truth for all bilingual copy the tier generators emit.
var messages = map[string]domain.LocalizedText{
	"tier1.title":        {Ko: "🔮 오늘의 정밀 분석", En: "🔮 Today's Precision Analysis"},
	"tier1.pillar":       {Ko: "📅 오늘의 일진: %s%s (%s)", En: "📅 Today's day pillar: %s%s (%s)"},
	"tier1.gongmang.yes": {Ko: "⚠️ 오늘은 공망(空亡)일입니다. 중요한 결정은 미루는 것이 좋습니다.", En: "⚠️ Today falls on your void (gongmang) day. Better to postpone major decisions."},
	"tier1.gongmang.no":  {Ko: "✅ 오늘은 공망일이 아닙니다. 평소대로 진행하세요.", En: "✅ Today is not a void day. Proceed as usual."},
	"tier1.shinsal":      {Ko: "🌟 오늘의 신살: %s", En: "🌟 Today's shinsal markers: %s"},
	"tier1.energy":       {Ko: "🌊 에너지 흐름: %s 기운이 강한 날", En: "🌊 Energy flow: a day of strong %s energy"},
	"tier1.hours.best":   {Ko: "⏰ 최상의 시간대: %s", En: "⏰ Best hours: %s"},
	"tier1.hours.good":   {Ko: "👍 좋은 시간대: %s", En: "👍 Good hours: %s"},
	"tier1.hours.care":   {Ko: "⚠️ 주의 시간대: %s", En: "⚠️ Caution hours: %s"},

	"tier2.title":      {Ko: "🔄 대운-트랜짓 동기화 분석", En: "🔄 Daeun-Transit Synchronization"},
	"tier2.pattern":    {Ko: "📈 인생 사이클 패턴: %s", En: "📈 Life-cycle pattern: %s"},
	"tier2.confidence": {Ko: "🎯 분석 신뢰도: %d/100", En: "🎯 Analysis confidence: %d/100"},
	"tier2.transition": {Ko: "%s%d세 (%d년) 대운 전환 — %s 시너지 %d점", En: "%sAge %d (%d) daeun transition — %s synergy, score %d"},
	"tier2.themes":     {Ko: "   주요 테마: %s", En: "   Key themes: %s"},
	"tier2.peaks":      {Ko: "🌟 절정기: %s", En: "🌟 Peak years: %s"},
	"tier2.challenges": {Ko: "⚡ 도전기: %s", En: "⚡ Challenge years: %s"},

	"tier3.title":        {Ko: "🌙 고급 점성술 분석", En: "🌙 Advanced Astrology"},
	"tier3.moon":         {Ko: "🌙 현재 달의 위상: %s", En: "🌙 Current moon phase: %s"},
	"tier3.voc":          {Ko: "⏳ 보이드 오브 코스: 달이 공허한 구간입니다. 새로운 시작은 피하세요.", En: "⏳ Void of course: the Moon is between aspects. Avoid new beginnings."},
	"tier3.retro":        {Ko: "↩️ 역행 중인 행성: %s", En: "↩️ Retrograde planets: %s"},
	"tier3.retro.merc":   {Ko: "📵 수성 역행: 계약, 통신, 이동 관련 일은 재확인하세요.", En: "📵 Mercury retrograde: double-check contracts, communication and travel."},
	"tier3.retro.venus":  {Ko: "💔 금성 역행: 관계와 금전 결정은 한 번 더 생각하세요.", En: "💔 Venus retrograde: reconsider relationship and money decisions."},
	"tier3.points":       {Ko: "✨ 특수 포인트 보유: %s", En: "✨ Special points present: %s"},
	"tier3.pattern":      {Ko: "💎 희귀 사주 패턴: %s (%s) — 평균 %.1f점", En: "💎 Rare saju pattern: %s (%s) — average score %.1f"},
	"tier3.rare":         {Ko: "🔹 희귀", En: "🔹 Rare"},
	"tier3.very_rare":    {Ko: "💠 매우 희귀!", En: "💠 Very rare!"},
	"tier3.legendary":    {Ko: "🏆 전설급!", En: "🏆 Legendary!"},

	"tier4.title":          {Ko: "🔭 심화 분석 (하모닉스·일월식·항성)", En: "🔭 Deep Analysis (Harmonics·Eclipses·Fixed Stars)"},
	"tier4.harmonic":       {Ko: "🎵 %d차 하모닉 차트: 강도 %.0f점", En: "🎵 Harmonic %d chart: strength %.0f"},
	"tier4.harmonic.top":   {Ko: "   가장 강한 하모닉: %s", En: "   Strongest harmonic: %s"},
	"tier4.harmonic.pat":   {Ko: "   패턴: %s", En: "   Patterns: %s"},
	"tier4.eclipse.head":   {Ko: "🌑 다가오는 일식/월식:", En: "🌑 Upcoming eclipses:"},
	"tier4.eclipse.item":   {Ko: "  • %s — %s %s %.1f°", En: "  • %s — %s %s %.1f°"},
	"tier4.eclipse.impact": {Ko: "  ↳ %s %s (오차 %.1f°): %s", En: "  ↳ %s %s (orb %.1f°): %s"},
	"tier4.eclipse.sens":   {Ko: "⚡ 일월식에 민감한 차트입니다.", En: "⚡ This chart is eclipse-sensitive."},
	"tier4.star":           {Ko: "⭐ %s ↔ %s (오차 %.1f°): %s", En: "⭐ %s ↔ %s (orb %.1f°): %s"},
	"tier4.star.royal":     {Ko: "👑 로열 스타(왕의 별) 합입니다!", En: "👑 Royal star conjunction!"},

	"shinsal.nobleman": {Ko: "천을귀인 (귀인의 도움)", En: "Cheoneul-gwiin (noble helper)"},
	"shinsal.travel":   {Ko: "역마 (이동·변화)", En: "Yeokma (travel/change)"},
	"shinsal.peach":    {Ko: "도화 (매력·인연)", En: "Dohwa (charm/attraction)"},
	"shinsal.canopy":   {Ko: "화개 (예술·고독)", En: "Hwagae (art/solitude)"},
	"shinsal.clash":    {Ko: "일지충 (충돌 주의)", En: "Day-branch clash (watch conflicts)"},

	"aspect.conjunction": {Ko: "합", En: "conjunction"},
	"aspect.opposition":  {Ko: "충", En: "opposition"},
	"aspect.square":      {Ko: "사각", En: "square"},
	"aspect.trine":       {Ko: "삼각", En: "trine"},
	"aspect.sextile":     {Ko: "육각", En: "sextile"},

	"pattern.rising":         {Ko: "상승형", En: "ascending"},
	"pattern.cyclical":       {Ko: "순환형", En: "cyclical"},
	"pattern.transformative": {Ko: "변혁형", En: "transformative"},

	"synergy.amplify":   {Ko: "증폭", En: "amplifying"},
	"synergy.balance":   {Ko: "균형", En: "balancing"},
	"synergy.friction":  {Ko: "마찰", En: "friction"},

	"theme.growth":    {Ko: "성장", En: "growth"},
	"theme.career":    {Ko: "커리어", En: "career"},
	"theme.relations": {Ko: "인간관계", En: "relationships"},
	"theme.wealth":    {Ko: "재물", En: "wealth"},
	"theme.health":    {Ko: "건강", En: "health"},
}

// Moon phase names by phase index 0..7.
var moonPhases = [8]domain.LocalizedText{
	{Ko: "삭 (뉴문)", En: "New Moon"},
	{Ko: "초승달", En: "Waxing Crescent"},
	{Ko: "상현달", En: "First Quarter"},
	{Ko: "차오르는 보름달", En: "Waxing Gibbous"},
	{Ko: "보름달 (풀문)", En: "Full Moon"},
	{Ko: "기우는 보름달", En: "Waning Gibbous"},
	{Ko: "하현달", En: "Last Quarter"},
	{Ko: "그믐달", En: "Waning Crescent"},
}

// Element display names.
var elementNames = map[string]domain.LocalizedText{
	"wood":  {Ko: "목(木)", En: "Wood"},
	"fire":  {Ko: "화(火)", En: "Fire"},
	"earth": {Ko: "토(土)", En: "Earth"},
	"metal": {Ko: "금(金)", En: "Metal"},
	"water": {Ko: "수(水)", En: "Water"},
}

// tr looks a message key up in the resource table. Unknown keys come back
// empty rather than panicking, so a missing entry degrades the line only.
func tr(lang, key string) string {
	return messages[key].In(lang)
}

// elementName localizes a five-element token.
func elementName(lang, element string) string {
	if t, ok := elementNames[element]; ok {
		return t.In(lang)
	}
	return element
}

// aspectName localizes an aspect type, falling back to the raw token.
func aspectName(lang, aspectType string) string {
	if t, ok := messages["aspect."+strings.ToLower(aspectType)]; ok {
		return t.In(lang)
	}
	return aspectType
}

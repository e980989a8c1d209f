package normalization

import "strings"

// OrgType приводит организационно-правовую форму к аббревиатуре: ООО, ИП, АО
func (n *Normalizer) OrgType(raw string) string {
	s := strings.Trim(collapseSpaces(raw), " ,.;:«»\"")
	if s == "" {
		return ""
	}
	key := strings.ToLower(strings.ReplaceAll(s, ".", ""))
	if canon, ok := n.dicts.OrgTypes[key]; ok {
		return canon
	}
	return strings.ToUpper(s)
}

// OrgName очищает наименование организации: срезает кавычки и
// организационно-правовую форму, если она попала в захват
func (n *Normalizer) OrgName(raw string) string {
	s := strings.Trim(collapseSpaces(raw), " ,.;:")
	s = strings.Trim(s, "«»\"'")
	if s == "" {
		return ""
	}
	words := strings.Fields(s)
	if len(words) > 1 {
		if _, ok := n.dicts.OrgTypes[strings.ToLower(words[0])]; ok {
			s = strings.Join(words[1:], " ")
			s = strings.Trim(s, "«»\"' ")
		}
	}
	return s
}

// OrgShortName строит краткое наименование: форма и имя в кавычках-елочках,
// для ИП кавычки не ставятся
func (n *Normalizer) OrgShortName(orgType, orgName string) string {
	if orgName == "" {
		return ""
	}
	if orgType == "" {
		return orgName
	}
	if orgType == "ИП" {
		return "ИП " + orgName
	}
	return orgType + " «" + orgName + "»"
}

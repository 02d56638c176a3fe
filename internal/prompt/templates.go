package prompt

const jsonOnly = `

Responda somente com o objeto JSON, sem markdown, sem blocos de código e sem texto antes ou depois.`

var v1Texts = map[string]string{
	TypeRG: `Analise esta imagem de RG. Extraia os dados e retorne APENAS um JSON puro (sem markdown) com as chaves em snake_case:
  - nome_completo
  - nome_social (se houver, senão null)
  - rg_numero (apenas números)
  - orgao_emissor (ex: SSP/SP)
  - cpf (apenas números, se houver)
  - data_nascimento (DD/MM/AAAA)
  - data_validade (DD/MM/AAAA, se houver)
  - nome_mae
  - nome_pai (se houver, senão null)
  - naturalidade (cidade/UF)`,

	TypeCNH: `Analise esta CNH. Extraia os dados e retorne APENAS um JSON puro (sem markdown) com as chaves em snake_case:
  - nome_completo
  - cpf (apenas números)
  - rg_numero
  - orgao_emissor_rg
  - registro_numero (em vermelho)
  - categoria_habilitacao
  - data_validade (DD/MM/AAAA)
  - data_primeira_habilitacao (DD/MM/AAAA)
  - data_nascimento (DD/MM/AAAA)
  - nome_mae
  - nome_pai (se houver)
  - observacoes`,

	TypeClasse: `Analise este documento de classe (OAB, CRM, etc). Extraia os dados e retorne APENAS um JSON puro (sem markdown) com as chaves em snake_case:
  - nome_completo
  - tipo_documento (ex: OAB, CRM)
  - numero_inscricao
  - seccional_ou_regiao
  - cpf
  - rg_numero
  - data_validade (DD/MM/AAAA)
  - data_emissao
  - filiacao`,

	TypeEndereco: `Analise comprovante de residência. Retorne APENAS um JSON puro (sem markdown) com: destinatario_nome, logradouro, numero, complemento, bairro, cidade, uf, cep, data_emissao.`,
}

var v2Texts = map[string]string{
	TypeRG: `Analise esta imagem de RG (carteira de identidade). Retorne APENAS um JSON puro (sem markdown) com as chaves:
  - tipo_documento: "RG"
  - nome_completo
  - nome_social (string ou null)
  - numero_doc (apenas números)
  - orgao_emissor (ex: SSP)
  - uf_emissor (sigla com 2 letras)
  - cpf (apenas 11 dígitos, ou null)
  - data_nascimento (DD/MM/AAAA)
  - data_emissao (DD/MM/AAAA, ou null)
  - data_validade (DD/MM/AAAA, ou null)
  - naturalidade (cidade/UF)
  - filiacao: lista de objetos {"tipo": "mae" | "pai", "nome": string}
  - confianca: "Alta" | "Média" | "Baixa" (legibilidade geral da leitura)`,

	TypeCNH: `Analise esta CNH (carteira nacional de habilitação). Retorne APENAS um JSON puro (sem markdown) com as chaves:
  - tipo_documento: "CNH"
  - nome_completo
  - numero_doc (número de registro, em vermelho, apenas números)
  - cpf (apenas 11 dígitos)
  - rg_vinculado: {"numero": string, "orgao_emissor": string, "uf_emissor": string}
  - categoria_habilitacao (ex: AB)
  - data_nascimento (DD/MM/AAAA)
  - data_primeira_habilitacao (DD/MM/AAAA)
  - data_emissao (DD/MM/AAAA)
  - data_validade (DD/MM/AAAA)
  - filiacao: lista de objetos {"tipo": "mae" | "pai", "nome": string}
  - observacoes (string ou null)
  - confianca: "Alta" | "Média" | "Baixa"`,

	TypeClasse: `Analise este documento de identidade profissional (OAB, CRM, CREA, CRC etc). Retorne APENAS um JSON puro (sem markdown) com as chaves:
  - tipo_documento (sigla do conselho, ex: OAB)
  - nome_completo
  - numero_doc (número de inscrição)
  - seccional_ou_regiao (ex: SP, 6ª Região)
  - cpf (apenas 11 dígitos, ou null)
  - rg_vinculado: {"numero": string, "orgao_emissor": string} ou null
  - data_emissao (DD/MM/AAAA, ou null)
  - data_validade (DD/MM/AAAA, ou null)
  - filiacao: lista de objetos {"tipo": "mae" | "pai", "nome": string}
  - confianca: "Alta" | "Média" | "Baixa"`,

	TypeEndereco: `Analise este comprovante de residência (conta de consumo, fatura ou extrato). Retorne APENAS um JSON puro (sem markdown) com as chaves:
  - tipo_documento: "COMPROVANTE_ENDERECO"
  - emissor (empresa que emitiu a conta)
  - destinatario_nome
  - endereco: {"logradouro": string, "numero": string, "complemento": string ou null, "bairro": string, "cidade": string, "uf": sigla com 2 letras, "cep": apenas 8 dígitos}
  - data_emissao (DD/MM/AAAA)
  - mes_referencia (MM/AAAA, ou null)
  - confianca: "Alta" | "Média" | "Baixa"`,
}

// FaceComparison instructs the backend to compare two face images. The first
// attached image is the reference document and the second the live capture.
const FaceComparison = `
Atue como um perito forense em biometria facial.
Compare as duas imagens fornecidas:
1. A primeira imagem é um documento de identificação (Referência).
2. A segunda imagem é uma selfie ao vivo (Prova de vida).

Analise a estrutura óssea, distância entre os olhos, formato do nariz e boca.
Ignore diferenças de iluminação, barba, maquiagem ou idade.

Responda ESTRITAMENTE com este JSON (sem markdown):
{
  "match": boolean (true se for a mesma pessoa, false se não),
  "score": number (0 a 100 indicando grau de semelhança),
  "confidence": "Alta" | "Média" | "Baixa",
  "details": "Uma frase curta explicando a conclusão técnica."
}` + jsonOnly

// ConfidenceLevels enumerates the confidence values the templates ask for.
var ConfidenceLevels = []string{"Alta", "Média", "Baixa"}
